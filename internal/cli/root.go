// Package cli wires the cobra command set of the widerow tool. Connection
// parameters come from persistent flags, WIDEROW_* environment variables and
// optional .env files, merged through viper.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.3.0"

var (
	rootCmd = &cobra.Command{
		Use:   "widerow",
		Short: "wide-column store client",
		Long: fmt.Sprintf(`widerow (v%s)

Ad-hoc reads, writes and scans against a wide-column store keyspace.
Column names and values are packed and unpacked according to the
family's schema unless --raw is given.`, version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of widerow",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("widerow v%s\n", version)
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("endpoint", "localhost:9160", "gateway address to connect to")
	rootCmd.PersistentFlags().String("keyspace", "", "keyspace holding the column family")
	rootCmd.PersistentFlags().String("family", "", "column family to operate on")
	rootCmd.PersistentFlags().String("consistency", "ONE", "consistency level for reads and writes (ONE, QUORUM, LOCAL_QUORUM, EACH_QUORUM, ALL, ANY)")
	rootCmd.PersistentFlags().Bool("super", false, "treat the family as a supercolumn family")
	rootCmd.PersistentFlags().Bool("raw", false, "skip schema-directed packing, names and values pass through as bytes")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(truncateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads .env files and binds WIDEROW_* environment variables.
func initConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("widerow")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
