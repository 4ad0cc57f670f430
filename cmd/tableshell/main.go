// Package main provides the tableshell CLI entry point.
// tableshell is an interactive console for taking restaurant table orders.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableshell/internal/clock"
	"tableshell/internal/config"
	"tableshell/internal/logger"
	"tableshell/internal/output"
	"tableshell/internal/restaurant"
	"tableshell/internal/shell"
	"tableshell/internal/version"
)

const banner = "Welcome to the RESTAURANT SHELL 9000!"

var (
	configFile string
	v          = config.NewViper()
	cfg        *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tableshell",
	Short: "Restaurant table-order console",
	Long: `tableshell is an interactive console for waiting staff: select a table,
place and rescind orders from the menu, and finalize invoices.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Long:  `Start the interactive tableshell console.`,
	Run:   runShell,
}

// batchCmd runs the lines of a script file as if they were typed
var batchCmd = &cobra.Command{
	Use:   "batch <script>",
	Short: "Execute a script of console commands",
	Long: `Execute a file of console commands without entering interactive mode.
Answers to follow-up questions such as order confirmations are read from the
following lines of the script.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

// menuCmd prints the menu and exits
var menuCmd = &cobra.Command{
	Use:   "menu [filter]",
	Short: "Print the menu",
	Long:  `Print the food items of the menu file, optionally filtered by name, type or tag.`,
	Args:  cobra.MaximumNArgs(1),
	Run:   runMenu,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version and build information of tableshell.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetDetailedVersion())
	},
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file [default: ./tableshell.yaml or ~/.config/tableshell/tableshell.yaml]")
	flags.String("menu", "food.csv", "Menu file (.csv with ';' separators, or .yaml)")
	flags.String("invoices", "invoices.txt", "File that saved invoices are appended to")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.Bool("test-mode", false, "Run in deterministic test mode")
	flags.String("color", "auto", "Colorize output (auto|always|never)")

	for key, flag := range map[string]string{
		config.KeyMenuFile:    "menu",
		config.KeyInvoiceFile: "invoices",
		config.KeyLogLevel:    "log-level",
		config.KeyLogFile:     "log-file",
		config.KeyTestMode:    "test-mode",
		config.KeyColor:       "color",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(versionCmd)

	// Load settings and configure the logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var err error
	cfg, err = loadConfig(v, configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves settings from .env, the config file, the environment and flags.
func loadConfig(v *viper.Viper, explicit string) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := config.ReadConfigFile(v, explicit); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func newPrinter(cfg *config.Config, w io.Writer) *output.Printer {
	return output.NewPrinter(
		output.WithWriter(w),
		output.WithStyles(output.NewThemeStyles(w, cfg.Color)),
		output.WithMode(cfg.Color),
	)
}

// newApp loads the menu and builds the restaurant state.
func newApp(cfg *config.Config) (*restaurant.App, error) {
	menu, err := restaurant.LoadMenu(cfg.MenuFile)
	if err != nil {
		return nil, err
	}
	return restaurant.NewApp(menu, restaurant.NewFileInvoiceStore(cfg.InvoiceFile), clock.New(cfg.TestMode), restaurant.Options{
		Currency:             cfg.Currency,
		SpecialRequestCharge: cfg.SpecialRequestCharge,
	})
}

// newShell builds a shell with the restaurant commands registered.
func newShell(cfg *config.Config, reader shell.LineReader, printer *output.Printer) (*shell.Shell, error) {
	app, err := newApp(cfg)
	if err != nil {
		return nil, err
	}
	sh := shell.New(reader, printer)
	if err := app.Register(sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func newReader(cfg *config.Config) (shell.LineReader, error) {
	if shell.IsTerminal() {
		return shell.NewReadlineReader(os.Stdout, cfg.HistoryFile)
	}
	return shell.NewScannerReader(os.Stdin, os.Stdout), nil
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting tableshell", "version", version.GetFormattedVersion())

	reader, err := newReader(cfg)
	if err != nil {
		logger.Fatal("Failed to open terminal", "error", err)
	}
	defer func() { _ = reader.Close() }()

	sh, err := newShell(cfg, reader, newPrinter(cfg, os.Stdout))
	if err != nil {
		logger.Fatal("Failed to initialize", "error", err)
	}
	if err := sh.Run(banner); err != nil {
		logger.Fatal("Shell stopped", "error", err)
	}
}

func runBatch(_ *cobra.Command, args []string) {
	scriptPath := args[0]
	logger.Info("Starting tableshell batch mode", "version", version.GetFormattedVersion(), "script", scriptPath)

	f, err := os.Open(scriptPath)
	if err != nil {
		logger.Fatal("Script not readable", "error", err)
	}
	defer f.Close()

	if err := runScript(cfg, f, newPrinter(cfg, os.Stdout)); err != nil {
		logger.Fatal("Script execution failed", "error", err)
	}
	logger.Info("Script executed successfully", "script", scriptPath)
}

// runScript executes script line by line until it ends or runs exit.
func runScript(cfg *config.Config, script io.Reader, printer *output.Printer) error {
	reader := shell.NewScannerReader(script, nil)
	sh, err := newShell(cfg, reader, printer)
	if err != nil {
		return err
	}
	for {
		in, err := reader.Read("")
		if err != nil {
			return err
		}
		if in.Signal == shell.SignalEOF || !sh.Execute(in.Line) {
			return nil
		}
	}
}

func runMenu(_ *cobra.Command, args []string) {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}
	if err := printMenu(cfg, newPrinter(cfg, os.Stdout), filter); err != nil {
		logger.Fatal("Failed to print menu", "error", err)
	}
}

func printMenu(cfg *config.Config, printer *output.Printer, filter string) error {
	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	app.PrintMenu(printer, filter)
	return nil
}
