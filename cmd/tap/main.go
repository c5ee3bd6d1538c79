// Command tap reads utterances and prints the interpreted commands as JSON.
// One utterance per line on stdin, or a single utterance as arguments.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tapvera/gotap/internal/store"
	"github.com/tapvera/gotap/pkg/interpreter"
	"github.com/tapvera/gotap/pkg/respond"
)

var rootCmd = &cobra.Command{
	Use:   "tap [utterance]",
	Short: "Natural-language command interpreter for the back office",
	Long: `Tap turns free-form requests like "create a task for John to review
the contract by tomorrow" into structured commands. Without arguments it
reads one utterance per line from stdin.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().String("caller", "cli", "caller id used to key conversation history")
	rootCmd.Flags().String("db", "", "SQLite path for persistent history (default: in-memory)")
	rootCmd.Flags().Float64("threshold", 0, "fuzzy match threshold (default 0.6)")
	rootCmd.Flags().Int("max-turns", 0, "history bound in turns (default 10)")

	viper.SetEnvPrefix("tap")
	viper.AutomaticEnv()
	viper.BindPFlag("caller", rootCmd.Flags().Lookup("caller"))
	viper.BindPFlag("db", rootCmd.Flags().Lookup("db"))
	viper.BindPFlag("threshold", rootCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("max_turns", rootCmd.Flags().Lookup("max-turns"))
}

func run(cmd *cobra.Command, args []string) error {
	cfg := interpreter.DefaultConfig()
	if t := viper.GetFloat64("threshold"); t > 0 {
		cfg.Threshold = t
	}
	if n := viper.GetInt("max_turns"); n > 0 {
		cfg.MaxTurns = n
	}

	var history store.Storer
	if dsn := viper.GetString("db"); dsn != "" {
		s, err := store.NewSQLiteStoreWithDSN(dsn, cfg.HistoryCapacity())
		if err != nil {
			return err
		}
		defer s.Close()
		history = s
	}

	interp, err := interpreter.New(cfg, history)
	if err != nil {
		return err
	}

	caller := interpreter.CallerRef{ID: viper.GetString("caller")}

	if len(args) > 0 {
		return interpret(interp, caller, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := interpret(interp, caller, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func interpret(interp *interpreter.Interpreter, caller interpreter.CallerRef, text string) error {
	cmd, _, err := interp.Interpret(caller.ID, text)
	if err != nil {
		return err
	}

	out, err := respond.MarshalSlimResponse(cmd)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
