// Package videoprobe reads container metadata back from finished video files.
package videoprobe

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/framereel/pkg/ports"
)

var (
	// ErrUnknownContainer is returned for files that are neither MP4 nor AVI.
	ErrUnknownContainer = errors.New("videoprobe: unknown container")

	// ErrNoVideoTrack is returned when the container has no video track.
	ErrNoVideoTrack = errors.New("videoprobe: no video track found")
)

// Prober implements ports.VideoProber for MP4 and AVI files.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe opens path and dispatches on its magic bytes.
func (p *Prober) Probe(path string) (ports.VideoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var head [12]byte
	if _, err := io.ReadFull(f, head[:]); err != nil {
		return ports.VideoInfo{}, fmt.Errorf("%w: %v", ErrUnknownContainer, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return ports.VideoInfo{}, fmt.Errorf("seek: %w", err)
	}

	switch {
	case string(head[0:4]) == "RIFF" && string(head[8:12]) == "AVI ":
		return probeAVI(f)
	case isMP4Box(string(head[4:8])):
		return probeMP4(f)
	default:
		return ports.VideoInfo{}, ErrUnknownContainer
	}
}

func isMP4Box(boxType string) bool {
	switch boxType {
	case "ftyp", "moov", "mdat", "free", "wide", "styp":
		return true
	}
	return false
}

func probeMP4(r io.ReadSeeker) (ports.VideoInfo, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	var moov *mp4.MoovBox
	if mp4File.IsFragmented() && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	} else {
		moov = mp4File.Moov
	}
	if moov == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		return trackInfo(trak), nil
	}
	return ports.VideoInfo{}, ErrNoVideoTrack
}

func trackInfo(trak *mp4.TrakBox) ports.VideoInfo {
	info := ports.VideoInfo{Container: "mp4"}

	if trak.Tkhd != nil {
		// tkhd dimensions are 16.16 fixed point
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}

	var timescale uint32 = 1000
	if trak.Mdia.Mdhd != nil && trak.Mdia.Mdhd.Timescale != 0 {
		timescale = trak.Mdia.Mdhd.Timescale
		info.DurationMs = int(trak.Mdia.Mdhd.Duration * 1000 / uint64(timescale))
	}

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return info
	}
	stbl := trak.Mdia.Minf.Stbl

	if stbl.Stsd != nil && len(stbl.Stsd.Children) > 0 {
		info.Codec = stbl.Stsd.Children[0].Type()
	}
	if stbl.Stsz != nil {
		info.FrameCount = int(stbl.Stsz.SampleNumber)
	}
	if stbl.Stts != nil && info.FrameCount > 0 {
		_, dur := stbl.Stts.GetDecodeTime(1)
		if dur > 0 {
			info.FPS = float64(timescale) / float64(dur)
		}
	}
	return info
}

// AVI main header (avih) field offsets from the start of the file.
const (
	aviUsPerFrame  = 32
	aviTotalFrames = 48
	aviWidth       = 64
	aviHeight      = 68
	aviHeaderEnd   = 72
)

func probeAVI(r io.Reader) (ports.VideoInfo, error) {
	// hdrl precedes movi and fits comfortably in the first few KiB.
	head := make([]byte, 4096)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return ports.VideoInfo{}, fmt.Errorf("read avi header: %w", err)
	}
	head = head[:n]
	if len(head) < aviHeaderEnd || string(head[24:28]) != "avih" {
		return ports.VideoInfo{}, fmt.Errorf("%w: missing avih header", ErrUnknownContainer)
	}

	le := binary.LittleEndian
	info := ports.VideoInfo{
		Container:  "avi",
		FrameCount: int(le.Uint32(head[aviTotalFrames:])),
		Width:      int(le.Uint32(head[aviWidth:])),
		Height:     int(le.Uint32(head[aviHeight:])),
	}
	if us := le.Uint32(head[aviUsPerFrame:]); us > 0 {
		info.FPS = 1e6 / float64(us)
	}

	// strh: fccType, fccHandler, flags, priority+language, initialFrames, scale, rate
	if i := bytes.Index(head, []byte("strh")); i >= 0 && i+8+28 <= len(head) {
		strh := head[i+8:]
		if string(strh[0:4]) != "vids" {
			return ports.VideoInfo{}, ErrNoVideoTrack
		}
		info.Codec = string(bytes.TrimRight(strh[4:8], "\x00 "))
		scale, rate := le.Uint32(strh[20:]), le.Uint32(strh[24:])
		if scale > 0 && rate > 0 {
			info.FPS = float64(rate) / float64(scale)
		}
	}

	if info.FPS > 0 {
		info.DurationMs = int(float64(info.FrameCount) * 1000 / info.FPS)
	}
	return info, nil
}

var _ ports.VideoProber = (*Prober)(nil)
