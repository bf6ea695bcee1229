// Package config loads configuration from environment variables.
//
// Load parses any struct annotated with `env` tags using
// github.com/caarlos0/env/v11. The default .env file in the working directory
// is read once through github.com/joho/godotenv before the first parse, and
// LoadEnv reads additional files. Every configuration type is parsed at most
// once per process and served from an in-memory cache afterwards; ResetCache
// clears it between tests.
//
// Config describes the settings of the useragents command:
//
//	USERAGENTS_LOG_LEVEL   debug | info | warn | error (default warn)
//	USERAGENTS_LOG_FORMAT  text | json (default text)
//	USERAGENTS_ENV         environment name added to log records
//	USERAGENTS_SEED        fixed seed for reproducible output
//	USERAGENTS_DATA_DIR    directory of <category>.csv corpora
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile, ErrNilPointer and ErrInvalidSetting.
package config
