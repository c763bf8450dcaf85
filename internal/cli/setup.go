package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/widerow/widerow/columnfamily"
	transportgrpc "github.com/widerow/widerow/transport/grpc"
	"github.com/widerow/widerow/wire"
)

// newHandle dials the gateway and opens a handle on the configured family.
// The returned cleanup closes the connection.
func newHandle(cmd *cobra.Command) (*columnfamily.ColumnFamily, func(), error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, nil, err
	}
	setupLogging()

	family := viper.GetString("family")
	if family == "" {
		return nil, nil, fmt.Errorf("--family is required")
	}

	client, err := transportgrpc.New(&transportgrpc.Config{
		Target:   viper.GetString("endpoint"),
		Keyspace: viper.GetString("keyspace"),
	})
	if err != nil {
		return nil, nil, err
	}

	cl := wire.ParseConsistencyLevel(viper.GetString("consistency"))
	raw := viper.GetBool("raw")

	cf, err := columnfamily.New(cmd.Context(), &columnfamily.Config{
		Client:              client,
		Name:                family,
		Super:               viper.GetBool("super"),
		ReadConsistency:     cl,
		WriteConsistency:    cl,
		DisableNamePacking:  raw,
		DisableValuePacking: raw,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return cf, func() { _ = client.Close() }, nil
}

func setupLogging() {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}
