package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/widerow/widerow/columnfamily"
)

var (
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the columns of a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, done, err := newHandle(cmd)
			if err != nil {
				return err
			}
			defer done()

			row, err := cf.Get(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			printRow(row, "")
			return nil
		},
	}

	countCmd = &cobra.Command{
		Use:   "count [key]",
		Short: "Counts the columns of a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, done, err := newHandle(cmd)
			if err != nil {
				return err
			}
			defer done()

			n, err := cf.GetCount(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			fmt.Printf("key=%s, columns=%d\n", args[0], n)
			return nil
		},
	}

	scanCmd = &cobra.Command{
		Use:   "scan [start] [finish]",
		Short: "Iterates rows of the family in key order",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, done, err := newHandle(cmd)
			if err != nil {
				return err
			}
			defer done()

			var start, finish string
			if len(args) > 0 {
				start = args[0]
			}
			if len(args) > 1 {
				finish = args[1]
			}

			it := cf.GetRange(cmd.Context(), start, finish, &columnfamily.RangeOptions{
				RowCount: viper.GetInt("rows"),
			})
			for it.Next() {
				fmt.Println(it.Key())
				printRow(it.Columns(), "  ")
			}
			return it.Err()
		},
	}

	insertCmd = &cobra.Command{
		Use:   "insert [key] [column=value]...",
		Short: "Writes one or more columns to a row",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, done, err := newHandle(cmd)
			if err != nil {
				return err
			}
			defer done()

			columns := make(map[interface{}]interface{}, len(args)-1)
			for _, pair := range args[1:] {
				name, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("column %q must have the form name=value", pair)
				}
				columns[name] = value
			}

			ts, err := cf.Insert(cmd.Context(), args[0], columns, &columnfamily.WriteOptions{
				TTL: int32(viper.GetInt("ttl")),
			})
			if err != nil {
				return err
			}
			fmt.Printf("inserted %d columns at timestamp %d\n", len(columns), ts)
			return nil
		},
	}

	removeCmd = &cobra.Command{
		Use:   "remove [key] [column]...",
		Short: "Deletes columns of a row, or the whole row when no columns are named",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, done, err := newHandle(cmd)
			if err != nil {
				return err
			}
			defer done()

			var columns []interface{}
			for _, name := range args[1:] {
				columns = append(columns, name)
			}

			ts, err := cf.Remove(cmd.Context(), args[0], columns, nil, nil)
			if err != nil {
				return err
			}
			fmt.Printf("removed at timestamp %d\n", ts)
			return nil
		},
	}

	truncateCmd = &cobra.Command{
		Use:   "truncate",
		Short: "Removes every row of the family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, done, err := newHandle(cmd)
			if err != nil {
				return err
			}
			defer done()

			if err := cf.Truncate(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("truncated %s\n", cf.Name())
			return nil
		},
	}
)

func init() {
	scanCmd.Flags().Int("rows", 0, "maximum number of rows to return (0 means unbounded)")
	insertCmd.Flags().Int("ttl", 0, "column time-to-live in seconds (0 means no expiry)")
}

// printRow prints unpacked columns one per line. Supercolumn rows nest one
// level deeper.
func printRow(row columnfamily.ResultMap, indent string) {
	for _, name := range row.Keys() {
		value, _ := row.Get(name)
		if nested, ok := value.(columnfamily.ResultMap); ok {
			fmt.Printf("%s%s:\n", indent, formatScalar(name))
			printRow(nested, indent+"  ")
			continue
		}
		fmt.Printf("%s%s=%s\n", indent, formatScalar(name), formatScalar(value))
	}
}

func formatScalar(v interface{}) string {
	switch t := v.(type) {
	case []byte:
		return fmt.Sprintf("%q", t)
	case columnfamily.TimestampedValue:
		return fmt.Sprintf("%s@%d", formatScalar(t.Value), t.Timestamp)
	default:
		return fmt.Sprintf("%v", t)
	}
}
