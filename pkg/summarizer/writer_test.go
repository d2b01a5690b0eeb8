package summarizer

import (
	"errors"
	"testing"

	"github.com/user/framereel/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string {
		return "frames: " + s.Input.Dir
	}), fs)

	summary := NewBuilder().WithInput(InputInfo{Dir: "images"}).Build()
	if err := w.Write("reports/summary.md", summary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("reports/summary.md")
	if !ok {
		t.Fatal("summary file not written")
	}
	if string(data) != "frames: images" {
		t.Errorf("unexpected content %q", data)
	}
	if exists, _ := fs.Exists("reports"); !exists {
		t.Error("expected parent directory to be created")
	}
}

func TestWriter_Write_Errors(t *testing.T) {
	errDisk := errors.New("disk full")
	format := FormatFunc(func(*Summary) string { return "x" })

	t.Run("mkdir", func(t *testing.T) {
		fs := mocks.NewFileSystem()
		fs.MkdirAllFunc = func(string) error { return errDisk }
		err := NewWriter(format, fs).Write("a/b.md", NewSummary())
		if !errors.Is(err, errDisk) {
			t.Errorf("expected wrapped disk error, got %v", err)
		}
	})

	t.Run("write", func(t *testing.T) {
		fs := mocks.NewFileSystem()
		fs.WriteFileFunc = func(string, []byte) error { return errDisk }
		err := NewWriter(format, fs).Write("b.md", NewSummary())
		if !errors.Is(err, errDisk) {
			t.Errorf("expected wrapped disk error, got %v", err)
		}
	})
}
