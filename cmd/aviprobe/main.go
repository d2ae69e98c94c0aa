// Command aviprobe inspects an AVI file's header, resolved decode plan, and
// (optionally) its movie-chunk frame index, as either human-readable text or
// JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aviframe/aviframe/avi"
)

var (
	flagJSON          bool
	flagVerbose       bool
	flagListFrames    bool
	flagFirstFrame    int
	flagLastFrame     int
	flagConvertToGray bool
	flagFlipVertical  bool
)

var rootCmd = &cobra.Command{
	Use:          "aviprobe <file>",
	Short:        "Inspect an AVI file's header, decode plan, and frame index",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON instead of text")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log chunk-scanner debug and progress events to stderr")
	rootCmd.Flags().BoolVar(&flagListFrames, "frames", false, "list every frame's offset, size, and timestamp")
	rootCmd.Flags().IntVar(&flagFirstFrame, "first-frame", 1, "1-based first frame to index")
	rootCmd.Flags().IntVar(&flagLastFrame, "last-frame", 0, "last frame to index (0 = until EOF, <0 = total+n)")
	rootCmd.Flags().BoolVar(&flagConvertToGray, "convert-to-gray", false, "force grayscale output for color sources")
	rootCmd.Flags().BoolVar(&flagFlipVertical, "flip-vertical", false, "flip the decoded orientation")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aviprobe:", err)
		os.Exit(1)
	}
}

// headerView and planView mirror avi.AviHeader/avi.DecodePlan for stable
// JSON field names independent of the package's internal struct tags.
type headerView struct {
	MicrosPerFrame uint32 `json:"micros_per_frame"`
	TotalFrames    uint32 `json:"total_frames"`
	Width          uint32 `json:"width"`
	Height         uint32 `json:"height"`
	Streams        uint32 `json:"streams"`
}

type planView struct {
	Bits    uint16 `json:"bits"`
	Layout  string `json:"layout"`
	TopDown bool   `json:"top_down"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Stride  int    `json:"stride"`
}

type frameView struct {
	Index           int    `json:"index"`
	FileOffset      uint64 `json:"file_offset"`
	ByteSize        uint32 `json:"byte_size"`
	TimestampMicros uint64 `json:"timestamp_micros"`
	Label           string `json:"label"`
}

type probeResult struct {
	Path   string      `json:"path"`
	Header headerView  `json:"header"`
	Plan   planView    `json:"plan"`
	Frames []frameView `json:"frames,omitempty"`
}

func run(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var reporter avi.Reporter = avi.NoopReporter{}
	if flagVerbose {
		reporter = avi.NewStdReporter(true)
	}

	opts := avi.Options{
		FirstFrameNumber: flagFirstFrame,
		LastFrameNumber:  flagLastFrame,
		IsVirtual:        true,
		ConvertToGray:    flagConvertToGray,
		FlipVertical:     flagFlipVertical,
	}

	dec, err := avi.Open(f, opts, reporter)
	if err != nil {
		return err
	}

	result := probeResult{
		Path:   path,
		Header: toHeaderView(dec.AviHeader()),
	}

	if flagListFrames {
		r, err := dec.Decode()
		if err != nil {
			return err
		}
		result.Plan = toPlanView(dec.DecodePlan())
		for n := 1; n <= r.Index.Size(); n++ {
			rec, err := r.Index.Record(n)
			if err != nil {
				return err
			}
			label, err := r.Index.SliceLabel(n)
			if err != nil {
				return err
			}
			result.Frames = append(result.Frames, frameView{
				Index: n, FileOffset: rec.FileOffset, ByteSize: rec.ByteSize,
				TimestampMicros: rec.TimestampMicros, Label: label,
			})
		}
	} else {
		result.Plan = toPlanView(dec.DecodePlan())
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printText(out, result)
	return nil
}

func toHeaderView(h avi.AviHeader) headerView {
	return headerView{
		MicrosPerFrame: h.MicrosPerFrame,
		TotalFrames:    h.TotalFrames,
		Width:          h.Width,
		Height:         h.Height,
		Streams:        h.Streams,
	}
}

func toPlanView(p avi.DecodePlan) planView {
	return planView{
		Bits:    p.Bits,
		Layout:  p.Layout.String(),
		TopDown: p.TopDown,
		Width:   p.Width,
		Height:  p.Height,
		Stride:  p.Stride,
	}
}

func printText(out interface{ Write([]byte) (int, error) }, r probeResult) {
	fmt.Fprintf(out, "%s\n", r.Path)
	fmt.Fprintf(out, "  header: %dx%d, %d frames, %d us/frame, %d stream(s)\n",
		r.Header.Width, r.Header.Height, r.Header.TotalFrames, r.Header.MicrosPerFrame, r.Header.Streams)
	fmt.Fprintf(out, "  plan:   %dx%d, %s, %d bpp, stride %d, top_down=%v\n",
		r.Plan.Width, r.Plan.Height, r.Plan.Layout, r.Plan.Bits, r.Plan.Stride, r.Plan.TopDown)
	for _, fr := range r.Frames {
		fmt.Fprintf(out, "  frame %d: offset=%d size=%d ts=%s\n", fr.Index, fr.FileOffset, fr.ByteSize, fr.Label)
	}
}
