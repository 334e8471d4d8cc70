// Package cli implements the pdrawinfo command: it loads PDRAW media-info
// records from files and reports how the media package handles them.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	media "github.com/thesyncim/pdrawmedia"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	v      *viper.Viper
	cfg    config
	log    *logrus.Logger
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{v: newViper(), stdout: stdout, stderr: stderr}

	root := a.rootCommand()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "pdrawinfo: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "pdrawinfo",
		Short:         "Inspect PDRAW media-info records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := readConfig(a.v, configFile)
			if err != nil {
				return err
			}
			l, err := newLogger(cfg, a.stderr)
			if err != nil {
				return err
			}
			if !cfg.Color {
				color.NoColor = true
			}
			a.cfg, a.log = cfg, l
			media.SetLogger(l)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./pdrawinfo.yaml)")
	flags.StringP("output", "o", outputText, "output format: text, json or yaml")
	flags.String("log-level", "warning", "log level")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("color", true, "colorize text output")
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("color", flags.Lookup("color"))

	root.AddCommand(a.inspectCommand(), a.sdpCommand(), a.versionCommand())
	return root
}

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Report support and descriptor of every record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, files []string) error {
			var entries []entry
			for _, file := range files {
				records, err := loadRecords(file)
				if err != nil {
					return err
				}
				a.log.WithFields(logrus.Fields{"file": file, "records": len(records)}).Info("records loaded")
				for _, info := range records {
					entries = append(entries, inspect(file, info))
				}
			}
			return render(a.stdout, a.cfg.Output, entries)
		},
	}
}

func (a *app) sdpCommand() *cobra.Command {
	var payloadType uint8

	cmd := &cobra.Command{
		Use:   "sdp FILE...",
		Short: "Print SDP rtpmap/fmtp attributes of H.264 medias",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, files []string) error {
			set := media.NewMediaSet()
			for _, file := range files {
				records, err := loadRecords(file)
				if err != nil {
					return err
				}
				for _, info := range records {
					if _, err := set.Add(info); err != nil {
						a.log.WithError(err).WithField("file", file).Warn("record skipped")
					}
				}
			}

			for _, mi := range set.List() {
				h, ok := mi.(*media.H264Info)
				if !ok {
					continue
				}
				p := h.CodecParameters(payloadType)
				fmt.Fprintf(a.stdout, "# media %d\n", h.MediaID())
				fmt.Fprintf(a.stdout, "a=rtpmap:%d H264/%d\n", p.PayloadType, p.ClockRate)
				fmt.Fprintf(a.stdout, "a=fmtp:%d %s\n", p.PayloadType, p.SDPFmtpLine)
			}
			return nil
		},
	}
	cmd.Flags().Uint8Var(&payloadType, "payload-type", media.VideoCodecH264.DefaultPayloadType(), "RTP payload type")
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.stdout, "pdrawinfo %s\n", Version)
		},
	}
}
