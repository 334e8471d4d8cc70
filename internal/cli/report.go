package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	media "github.com/thesyncim/pdrawmedia"
	"github.com/thesyncim/pdrawmedia/pdraw"
)

// entry is what inspect reports about one record.
type entry struct {
	File      string  `json:"file" yaml:"file"`
	ID        uint32  `json:"id" yaml:"id"`
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Code      int     `json:"code" yaml:"code"`
	Supported bool    `json:"supported" yaml:"supported"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
	Codec     string  `json:"codec,omitempty" yaml:"codec,omitempty"`
	Kind      string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Source    string  `json:"source,omitempty" yaml:"source,omitempty"`
	Width     int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height    int     `json:"height,omitempty" yaml:"height,omitempty"`
	Framerate float64 `json:"framerate,omitempty" yaml:"framerate,omitempty"`

	// H.264
	StreamFormat string  `json:"stream_format,omitempty" yaml:"stream_format,omitempty"`
	Profile      string  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Level        float64 `json:"level,omitempty" yaml:"level,omitempty"`
	Fmtp         string  `json:"fmtp,omitempty" yaml:"fmtp,omitempty"`

	// YUV
	PixelFormat string `json:"pixel_format,omitempty" yaml:"pixel_format,omitempty"`
	FrameSize   int    `json:"frame_size,omitempty" yaml:"frame_size,omitempty"`
}

func inspect(file string, info *pdraw.MediaInfo) entry {
	e := entry{File: file, Code: media.IsSupported(info)}
	if info != nil {
		e.ID = info.ID
		e.Name = info.Name
	}
	if c := media.CodecOf(info); c != media.VideoCodecUnknown {
		e.Codec = c.String()
	}

	mi, err := media.NewMediaInfo(info)
	if err != nil {
		e.Error = err.Error()
		return e
	}
	e.Supported = true
	e.Kind = mi.Kind().String()

	switch mi := mi.(type) {
	case *media.H264Info:
		describeVideo(&e, &mi.VideoInfo)
		e.StreamFormat = mi.StreamFormat().String()
		e.Fmtp = mi.FmtpLine()
		if p, err := mi.Params(); err == nil {
			e.Profile = p.Profile().String()
			e.Level = p.Level()
		}
	case *media.YUVInfo:
		describeVideo(&e, &mi.VideoInfo)
		e.PixelFormat = mi.Format().String()
		e.FrameSize = mi.FrameSize()
	}
	return e
}

func describeVideo(e *entry, v *media.VideoInfo) {
	e.Source = v.Source().String()
	e.Width = v.Width()
	e.Height = v.Height()
	e.Framerate = v.Framerate()
}

func render(w io.Writer, format string, entries []entry) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, entries)
	}
}

func renderText(w io.Writer, entries []entry) error {
	ok := color.New(color.FgGreen).SprintFunc()
	ko := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, e := range entries {
		var b strings.Builder
		fmt.Fprintf(&b, "%s media %d", dim(e.File+":"), e.ID)
		if e.Name != "" {
			fmt.Fprintf(&b, " %q", e.Name)
		}
		if !e.Supported {
			fmt.Fprintf(&b, " %s", ko("not supported"))
		if e.Codec != "" {
			fmt.Fprintf(&b, " %s", e.Codec)
		}
		fmt.Fprintf(&b, " (%d): %s", e.Code, e.Error)
			if _, err := fmt.Fprintln(w, b.String()); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(&b, " %s %s %s %s %dx%d", ok("supported"), e.Kind, e.Codec, e.Source, e.Width, e.Height)
		if e.Framerate > 0 {
			fmt.Fprintf(&b, "@%.2f", e.Framerate)
		}
		if e.StreamFormat != "" {
			fmt.Fprintf(&b, " %s", e.StreamFormat)
		}
		if e.Profile != "" {
			fmt.Fprintf(&b, " %s@%.1f", e.Profile, e.Level)
		}
		if e.PixelFormat != "" {
			fmt.Fprintf(&b, " %s %dB/frame", e.PixelFormat, e.FrameSize)
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
