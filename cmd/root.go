package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "engihub",
	Short: "AI study hub for engineering students",
	Long: "EngiHub is a terminal study hub for engineering students: subject quizzes,\n" +
		"study roadmaps, concept explanations and an AI tutor, powered by an LLM.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/engihub/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to the usage-log database (overrides ENGIHUB_DB)")
	rootCmd.PersistentFlags().Bool("no-log", false, "Do not record model calls in the usage log")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path: --db flag first, then the
// configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
