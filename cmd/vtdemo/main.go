// Command vtdemo spawns a subprocess under a PTY, feeds its output
// through the vte core onto an in-memory screen buffer, and reflects
// keystrokes back through the keyboard encoder. It exists to give the
// library something concrete to run end to end; it carries no
// invariants of its own beyond forwarding bytes both ways without
// crashing.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"pkt.systems/pslog"

	"github.com/wq-tty/vte/cmd/vtdemo/internal/session"
)

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("VTDEMO")
	v.AutomaticEnv()
	v.SetDefault("palette", "default")
	v.SetDefault("rows", 24)
	v.SetDefault("cols", 80)
	v.SetDefault("local_echo", false)
	return v
}

func newRootCommand() *cobra.Command {
	v := newConfig()
	var bindErr error

	cmd := &cobra.Command{
		Use:   "vtdemo -- <command> [args...]",
		Short: "Run a subprocess under a PTY through the vte emulator core",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bindErr != nil {
				return bindErr
			}
			logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(os.Stderr))
			cfg := session.Config{
				Command:   args,
				Palette:   v.GetString("palette"),
				Rows:      v.GetInt("rows"),
				Cols:      v.GetInt("cols"),
				LocalEcho: v.GetBool("local_echo"),
				Logger:    logger,
			}
			return session.Run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("palette", "default", "built-in palette name")
	flags.Int("rows", 24, "initial screen rows")
	flags.Int("cols", 80, "initial screen columns")
	flags.Bool("local-echo", false, "enable local echo (SRM off)")

	bind := func(key, name string) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			bindErr = err
		}
	}
	bind("palette", "palette")
	bind("rows", "rows")
	bind("cols", "cols")
	bind("local_echo", "local-echo")

	return cmd
}

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "vtdemo: stdin is not a terminal")
	}

	root := newRootCommand()
	root.SetContext(pslog.ContextWithLogger(context.Background(), pslog.LoggerFromEnv()))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
