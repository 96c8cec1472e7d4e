// Command factgraphd serves the Fact Graph REST API (C11): it loads a
// dictionary, wires a fresh graph.Graph over an empty store, and hands
// both to internal/api.Server. Grounded on orbas1-Synnergy's
// cmd/dexserver and cmd/synnergy entrypoints: env-driven config read
// through godotenv, logrus for startup/request logging, cobra for the
// command surface.
package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trueprep/fact-graph/dictionary"
	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/graph"
	"github.com/trueprep/fact-graph/internal/api"
	"github.com/trueprep/fact-graph/internal/dictfile"
	"github.com/trueprep/fact-graph/migrate"
	"github.com/trueprep/fact-graph/store"
	"github.com/trueprep/fact-graph/value"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "factgraphd",
		Short: "Fact Graph evaluation server",
	}
	root.AddCommand(serveCmd())
	return root
}

func serveCmd() *cobra.Command {
	var addr, dictPath, logLevel string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the REST API (spec §6 boundary operations)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, dictPath, logLevel)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", envOr("FACTGRAPH_ADDR", ":8080"), "listen address")
	cmd.Flags().StringVar(&dictPath, "dict", os.Getenv("FACTGRAPH_DICT"), "dictionary definition file (FACTGRAPH_DICT); empty uses the built-in demo dictionary")
	cmd.Flags().StringVar(&logLevel, "log-level", envOr("FACTGRAPH_LOG_LEVEL", "info"), "logrus level")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runServe performs startup (dictionary load, graph construction) and
// then blocks serving. A non-nil return here is a startup failure
// (spec §6: "non-zero on startup failure"); once ListenAndServe starts
// blocking, an error from it is a runtime failure logged and fatal the
// same way.
func runServe(addr, dictPath, logLevel string) error {
	_ = godotenv.Load()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(logLevel); err == nil {
		log.SetLevel(lvl)
	}

	dict, err := loadDictionary(dictPath)
	if err != nil {
		log.WithError(err).Error("failed to load dictionary")
		return err
	}

	g := graph.New(dict, store.New(), graph.WithLogger(log))
	srv := api.NewServer(g, dict, migrate.NewRegistry(), log)

	log.WithField("addr", addr).Info("factgraphd listening")
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	return nil
}

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return demoDictionary()
	}
	return dictfile.LoadFile(path)
}

// demoDictionary is the dictionary served when no definition file is
// supplied: two writable facts and one derived sum, enough to exercise
// every boundary operation against a running server with no setup.
func demoDictionary() (*dictionary.Dictionary, error) {
	return dictionary.NewBuilder().
		Define(dictionary.FactDefinition{AbstractPath: "/income", DeclaredType: value.KindDollar, IsWritable: true}).
		Define(dictionary.FactDefinition{AbstractPath: "/bonus", DeclaredType: value.KindDollar, IsWritable: true}).
		Define(dictionary.FactDefinition{
			AbstractPath: "/total",
			DeclaredType: value.KindDollar,
			Expression: expr.Add{
				Left:  expr.Dep{Path: fgpath.MustParse("/income")},
				Right: expr.Dep{Path: fgpath.MustParse("/bonus")},
			},
		}).
		Freeze()
}
