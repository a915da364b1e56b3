package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	NotesPath    string `mapstructure:"notes"`
	CorpusPath   string `mapstructure:"corpus"`
	Output       string `mapstructure:"output"`
	LogLevel     string `mapstructure:"log_level"`
	ShowContext  bool   `mapstructure:"show_context"`
	ColorText    string `mapstructure:"color_text"`
	ColorHeader  string `mapstructure:"color_header"`
	ColorPath    string `mapstructure:"color_path"`
	ColorContext string `mapstructure:"color_context"`
	ColorBorder  string `mapstructure:"color_border"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	// A .env next to the binary's working directory feeds the environment
	_ = godotenv.Load()

	viper.SetDefault("notes", "./notes")
	viper.SetDefault("corpus", "~/.local/share/snipmd/snippets.json")
	viper.SetDefault("output", "print")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("show_context", false)
	viper.SetDefault("color_text", "37")    // White
	viper.SetDefault("color_header", "36")  // Cyan
	viper.SetDefault("color_path", "90")    // Gray
	viper.SetDefault("color_context", "90") // Gray
	viper.SetDefault("color_border", "240") // Dark gray

	viper.SetConfigName("snipmd")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "snipmd"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("SNIPMD")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetNotesPath returns the notes root with tilde expansion
func GetNotesPath() string {
	return expandTilde(viper.GetString("notes"))
}

// GetCorpusPath returns the corpus file path with tilde expansion
func GetCorpusPath() string {
	return expandTilde(viper.GetString("corpus"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetLogLevel returns the log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetShowContext returns whether neighboring paragraphs are shown
func GetShowContext() bool {
	return viper.GetBool("show_context")
}

// GetColorText returns the color for snippet text
func GetColorText() string {
	return viper.GetString("color_text")
}

// GetColorHeader returns the color for the heading path
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorPath returns the color for the source filename
func GetColorPath() string {
	return viper.GetString("color_path")
}

// GetColorContext returns the color for neighboring paragraphs
func GetColorContext() string {
	return viper.GetString("color_context")
}

// GetColorBorder returns the color for the frame
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetNotesPath sets the notes root at runtime
func SetNotesPath(path string) {
	viper.Set("notes", path)
	C.NotesPath = path
}

// SetLogLevel sets the log level at runtime
func SetLogLevel(level string) {
	viper.Set("log_level", level)
	C.LogLevel = level
}

// SetShowContext toggles neighboring paragraphs at runtime
func SetShowContext(show bool) {
	viper.Set("show_context", show)
	C.ShowContext = show
}
