package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"claude-3-5-haiku-latest"`
		MaxTokens   int           `yaml:"max_tokens" default:"4000"`
		Temperature float32       `yaml:"temperature" default:"0.2"`
		Timeout     time.Duration `yaml:"timeout" default:"120s"`
	} `yaml:"llm"`

	ImageSearch struct {
		Provider   string        `yaml:"provider" default:"unsplash"`
		APIKey     string        `yaml:"api_key"`
		BaseURL    string        `yaml:"base_url" default:"https://api.unsplash.com"`
		Timeout    time.Duration `yaml:"timeout" default:"10s"`
		PerPage    int           `yaml:"per_page" default:"1"`
		RateLimit  int           `yaml:"rate_limit" default:"50"` // requests per minute
		CacheTTL   time.Duration `yaml:"cache_ttl" default:"1h"`
		MaxRetries int           `yaml:"max_retries" default:"1"`
	} `yaml:"image_search"`

	ImageGen struct {
		Provider string        `yaml:"provider" default:"gemini"`
		APIKey   string        `yaml:"api_key"`
		Model    string        `yaml:"model" default:"imagen-3.0-generate-002"`
		BaseURL  string        `yaml:"base_url" default:"https://generativelanguage.googleapis.com"`
		Timeout  time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"image_gen"`

	Images struct {
		MaxUploadWidth     int   `yaml:"max_upload_width" default:"500"`
		MaxUploadHeight    int   `yaml:"max_upload_height" default:"500"`
		PlaceholderWidth   int   `yaml:"placeholder_width" default:"400"`
		PlaceholderHeight  int   `yaml:"placeholder_height" default:"400"`
		MaxUploadSizeBytes int64 `yaml:"max_upload_size_bytes" default:"10485760"`
	} `yaml:"images"`

	Export struct {
		TempDir    string        `yaml:"temp_dir"`
		PandocPath string        `yaml:"pandoc_path" default:"pandoc"`
		Timeout    time.Duration `yaml:"timeout" default:"120s"`
	} `yaml:"export"`

	Redis struct {
		Enabled  bool          `yaml:"enabled" default:"false"`
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or
// $VAR syntax. An unset ${VAR} expands to the empty string so that a missing
// credential reads as absent, not as the literal placeholder text.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-3-5-haiku-latest"
	config.LLM.MaxTokens = 4000
	config.LLM.Temperature = 0.2
	config.LLM.Timeout = 120 * time.Second

	config.ImageSearch.Provider = "unsplash"
	config.ImageSearch.BaseURL = "https://api.unsplash.com"
	config.ImageSearch.Timeout = 10 * time.Second
	config.ImageSearch.PerPage = 1
	config.ImageSearch.RateLimit = 50
	config.ImageSearch.CacheTTL = 1 * time.Hour
	config.ImageSearch.MaxRetries = 1

	config.ImageGen.Provider = "gemini"
	config.ImageGen.Model = "imagen-3.0-generate-002"
	config.ImageGen.BaseURL = "https://generativelanguage.googleapis.com"
	config.ImageGen.Timeout = 60 * time.Second

	config.Images.MaxUploadWidth = 500
	config.Images.MaxUploadHeight = 500
	config.Images.PlaceholderWidth = 400
	config.Images.PlaceholderHeight = 400
	config.Images.MaxUploadSizeBytes = 10 * 1024 * 1024

	config.Export.TempDir = os.TempDir()
	config.Export.PandocPath = "pandoc"
	config.Export.Timeout = 120 * time.Second

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if maxTokens := os.Getenv("LLM_MAX_TOKENS"); maxTokens != "" {
		if n, err := strconv.Atoi(maxTokens); err == nil {
			c.LLM.MaxTokens = n
		}
	}

	if searchAPIKey := os.Getenv("UNSPLASH_API_KEY"); searchAPIKey != "" {
		c.ImageSearch.APIKey = searchAPIKey
	}

	if searchBaseURL := os.Getenv("IMAGE_SEARCH_BASE_URL"); searchBaseURL != "" {
		c.ImageSearch.BaseURL = searchBaseURL
	}

	if searchTimeout := os.Getenv("IMAGE_SEARCH_TIMEOUT"); searchTimeout != "" {
		if timeout, err := time.ParseDuration(searchTimeout); err == nil {
			c.ImageSearch.Timeout = timeout
		}
	}

	if genAPIKey := os.Getenv("GEMINI_API_KEY"); genAPIKey != "" {
		c.ImageGen.APIKey = genAPIKey
	}

	if genModel := os.Getenv("IMAGE_GEN_MODEL"); genModel != "" {
		c.ImageGen.Model = genModel
	}

	if genBaseURL := os.Getenv("IMAGE_GEN_BASE_URL"); genBaseURL != "" {
		c.ImageGen.BaseURL = genBaseURL
	}

	if tempDir := os.Getenv("EXPORT_TEMP_DIR"); tempDir != "" {
		c.Export.TempDir = tempDir
	}

	if pandocPath := os.Getenv("PANDOC_PATH"); pandocPath != "" {
		c.Export.PandocPath = pandocPath
	}

	if redisEnabled := os.Getenv("REDIS_ENABLED"); redisEnabled != "" {
		c.Redis.Enabled = redisEnabled == "true" || redisEnabled == "1"
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
