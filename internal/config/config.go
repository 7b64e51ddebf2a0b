package config

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Output     OutputConfig     `yaml:"output"`
	Session    SessionConfig    `yaml:"session"`
	Log        LogConfig        `yaml:"log"`
}

// DatabaseConfig holds settings for the relational dictionary backend.
type DatabaseConfig struct {
	Path          string `yaml:"path"            env:"DATABASE_PATH"`
	MaxBindParams int    `yaml:"max_bind_params" env:"DATABASE_MAX_BIND_PARAMS" env-default:"900"`
}

// DictionaryConfig selects and configures the dictionary backend.
// The local backend reads flat JSON files instead of the database.
type DictionaryConfig struct {
	Backend     string `yaml:"backend"      env:"DICT_BACKEND"      env-default:"dpd"`
	PrimaryPath string `yaml:"primary_path" env:"DICT_PRIMARY_PATH"`
	GeneralPath string `yaml:"general_path" env:"DICT_GENERAL_PATH"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"compact"`
}

// SessionConfig holds session persistence settings.
type SessionConfig struct {
	Path     string `yaml:"path"     env:"SESSION_PATH" env-default:"./session.json"`
	Autosave bool   `yaml:"autosave" env:"SESSION_AUTOSAVE" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
