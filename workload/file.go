package workload

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Binary workload file format (LittleEndian):
//
//	[8]byte  Magic: "ISLBNCH1"
//	uint16   Version: 1
//	uint16   Reserved: 0
//	uint64   OpCount
//	repeated OpCount times:
//	  uint8  Kind   (0=Insert, 1=Remove)
//	  int64  Marker
//	  int64  Start  (0 for Remove)
//	  int64  End    (0 for Remove)

var (
	fileMagic   = [8]byte{'I', 'S', 'L', 'B', 'N', 'C', 'H', '1'}
	fileVersion = uint16(1)
)

// WriteFile persists ops to path in the ISLBNCH1 format.
func WriteFile(path string, ops []Op) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeOps(f, ops)
}

func writeOps(w io.Writer, ops []Op) error {
	if _, err := w.Write(fileMagic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, fileVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(ops))); err != nil {
		return err
	}
	for _, op := range ops {
		if err := binary.Write(w, binary.LittleEndian, uint8(op.Kind)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, op.Marker); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, op.Start); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, op.End); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile loads an ISLBNCH1 workload file written by WriteFile.
func ReadFile(path string) ([]Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readOps(f)
}

func readOps(r io.Reader) ([]Op, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if magic != fileMagic {
		return nil, fmt.Errorf("workload: invalid magic %q", magic)
	}
	var ver uint16
	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return nil, err
	}
	if ver != fileVersion {
		return nil, fmt.Errorf("workload: unsupported version %d", ver)
	}
	var reserved uint16
	if err := binary.Read(r, binary.LittleEndian, &reserved); err != nil {
		return nil, err
	}
	var opCount uint64
	if err := binary.Read(r, binary.LittleEndian, &opCount); err != nil {
		return nil, err
	}
	ops := make([]Op, 0, opCount)
	for i := uint64(0); i < opCount; i++ {
		var kind uint8
		var marker, start, end int64
		if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &marker); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &start); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &end); err != nil {
			return nil, err
		}
		ops = append(ops, Op{Kind: OpKind(kind), Marker: marker, Start: start, End: end})
	}
	return ops, nil
}
