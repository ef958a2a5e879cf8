package cmd

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hammify/config"
	log "github.com/harlequix/hammify/log"
)

var (
	cfgFile     string
	cfg         config.Config
	stopProfile func()
	logger      = log.NewLogger("cli")
)

var rootCmd = &cobra.Command{
	Use:   "hammify",
	Short: "Protect files with a SECDED Hamming code",
	Long: `hammify splits a file into fixed-size chunks and encodes every chunk
as a Hamming codeword with one global parity bit. Decoding corrects any
single flipped bit per chunk and refuses chunks with detectable double errors.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

// Execute runs the command line.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.UintP("buffer", "b", 8, "message bits per chunk, a multiple of 8")
	flags.BoolP("verbose", "v", false, "log every corrected chunk")
	flags.Int("workers", runtime.NumCPU(), "chunks coded in parallel")
	flags.Int("batch", 256, "chunks read per batch")
	flags.String("trace", "", "write JSON logs to <trace>.debug, .warn and .error")
	flags.String("profile", "", "profile the run: cpu or mem")
	for _, name := range []string{"buffer", "verbose", "workers", "batch", "trace", "profile"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.SetConfigFile(cfgFile); err != nil {
		return err
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c

	level := "info"
	if cfg.Verbose {
		level = "debug"
	}
	if err := log.SetLevel(level); err != nil {
		return err
	}
	if cfg.Trace != "" {
		log.AddTracer(log.Base(), cfg.Trace)
	}

	switch cfg.Profile {
	case "cpu":
		stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
	case "mem":
		stopProfile = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop
	}
	logger.WithField("config", cfg).Debug("configured")
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if stopProfile != nil {
		stopProfile()
		stopProfile = nil
	}
}
