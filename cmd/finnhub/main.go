// Command finnhub is a small CLI over the Finnhub API client. The API key is
// read from the --token flag or the FINNHUB_TOKEN environment variable, and
// responses are printed as indented JSON on stdout.
package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"finnhub/pkg/core"
	"finnhub/pkg/finnhub"
)

var (
	logger zerolog.Logger
	client *finnhub.Client

	baseURL    string
	timeout    time.Duration
	verbose    bool
	resolution string
	from       int64
	to         int64
)

var rootCmd = &cobra.Command{
	Use:               "finnhub",
	Short:             "Query the Finnhub stock API",
	PersistentPreRunE: initClient,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("token", "", "Finnhub API key (env: FINNHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", finnhub.DefaultBaseURL, "API root URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.SetEnvPrefix("FINNHUB")
	viper.AutomaticEnv()

	candlesCmd.Flags().StringVar(&resolution, "resolution", "D", "candle resolution (1, 5, 15, 30, 60, D, W, M)")
	candlesCmd.Flags().Int64Var(&from, "from", 0, "start of the range as a UNIX timestamp")
	candlesCmd.Flags().Int64Var(&to, "to", 0, "end of the range as a UNIX timestamp")
	candlesCmd.MarkFlagRequired("from")
	candlesCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(candlesCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(profileCmd)
}

func initClient(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	token := viper.GetString("token")
	if token == "" {
		return errors.New("no API key: set --token or FINNHUB_TOKEN")
	}

	var err error
	client, err = finnhub.New(token,
		finnhub.WithBaseURL(baseURL),
		finnhub.WithTimeout(timeout),
		finnhub.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

var quoteCmd = &cobra.Command{
	Use:   "quote <symbol>",
	Short: "Fetch the current quote for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, resolved, err := client.Quote(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(outcome, resolved)
	},
}

var candlesCmd = &cobra.Command{
	Use:   "candles <symbol>",
	Short: "Fetch OHLCV candles for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := finnhub.ParseResolution(resolution)
		if err != nil {
			return err
		}
		outcome, resolved, err := client.StockCandles(cmd.Context(), args[0], res, from, to)
		if err != nil {
			return err
		}
		return render(outcome, resolved)
	},
}

var newsCmd = &cobra.Command{
	Use:   "news [category]",
	Short: "Fetch the latest market news (default category: general)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := finnhub.NewsCategoryGeneral
		if len(args) == 1 {
			var err error
			category, err = finnhub.ParseNewsCategory(args[0])
			if err != nil {
				return err
			}
		}
		outcome, resolved, err := client.MarketNews(cmd.Context(), category)
		if err != nil {
			return err
		}
		return render(outcome, resolved)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Look up symbols matching a query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, resolved, err := client.SymbolLookup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(outcome, resolved)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <symbol>",
	Short: "Fetch the company profile for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, resolved, err := client.CompanyProfile2(cmd.Context(), finnhub.ProfileKeySymbol, args[0])
		if err != nil {
			return err
		}
		return render(outcome, resolved)
	},
}

func render[T any](outcome core.APIResponse[T], resolved *url.URL) error {
	logger.Debug().Str("url", resolved.String()).Msg("resolved request url")

	value, ok := outcome.Response()
	if !ok {
		return errors.New("rate limit reached, back off before retrying")
	}

	data, err := sonic.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("render response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
