package commitvalidate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the optional configuration file.
const DefaultConfigFile = ".validate-commit.yml"

const (
	defaultIssueProject         = "S3CSI"
	defaultMinDescriptionLength = 10
	defaultMaxDescriptionLength = 72
)

// defaultUserFacingTypes are change categories visible to end users.
// Commits of these types must carry an issue reference.
var defaultUserFacingTypes = []string{"feat", "fix", "perf", "security", "breaking"}

// defaultDevelopmentTypes are internal maintenance categories where an
// issue reference is optional.
var defaultDevelopmentTypes = []string{"docs", "test", "ci", "chore", "refactor", "style", "build", "revert"}

// projectKeyPattern constrains the JIRA project key: a case-sensitive
// prefix of letters and digits starting with a letter.
var projectKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Config holds the classification tables for commit message validation.
// The zero value is not usable; obtain one via DefaultConfig or LoadConfig.
type Config struct {
	UserFacingTypes      []string `yaml:"user_facing_types,omitempty"`
	DevelopmentTypes     []string `yaml:"development_types,omitempty"`
	IssueProject         string   `yaml:"issue_project,omitempty"`
	MinDescriptionLength int      `yaml:"min_description_length,omitempty"`
	MaxDescriptionLength int      `yaml:"max_description_length,omitempty"`

	// compiled tables, populated by validateConfig (cached, not in YAML)
	userFacing  map[string]bool
	development map[string]bool
	allTypes    []string
	jiraID      *regexp.Regexp
	jiraExact   *regexp.Regexp
}

// DefaultConfig returns the built-in classification tables.
func DefaultConfig() *Config {
	config := &Config{
		UserFacingTypes:      slices.Clone(defaultUserFacingTypes),
		DevelopmentTypes:     slices.Clone(defaultDevelopmentTypes),
		IssueProject:         defaultIssueProject,
		MinDescriptionLength: defaultMinDescriptionLength,
		MaxDescriptionLength: defaultMaxDescriptionLength,
	}

	// The defaults always validate.
	err := validateConfig(config)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}

	return config
}

// LoadConfig loads configuration from the specified directory. A missing
// config file is not an error: the built-in tables are used unchanged.
func LoadConfig(repoPath string) (*Config, error) {
	config := DefaultConfig()

	configPath := filepath.Join(repoPath, DefaultConfigFile)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so omitted fields keep their built-in values.
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	err = validateConfig(config)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if len(config.UserFacingTypes) == 0 {
		return errors.New("user_facing_types must not be empty")
	}

	if len(config.DevelopmentTypes) == 0 {
		return errors.New("development_types must not be empty")
	}

	if !projectKeyPattern.MatchString(config.IssueProject) {
		return fmt.Errorf("issue_project must be alphanumeric and start with a letter, got %q", config.IssueProject)
	}

	if config.MinDescriptionLength < 1 {
		return fmt.Errorf("min_description_length must be at least 1, got %d", config.MinDescriptionLength)
	}

	if config.MaxDescriptionLength < config.MinDescriptionLength {
		return fmt.Errorf(
			"max_description_length (%d) must not be smaller than min_description_length (%d)",
			config.MaxDescriptionLength,
			config.MinDescriptionLength,
		)
	}

	config.userFacing = make(map[string]bool, len(config.UserFacingTypes))
	config.development = make(map[string]bool, len(config.DevelopmentTypes))

	for _, commitType := range config.UserFacingTypes {
		normalized := strings.ToLower(strings.TrimSpace(commitType))
		if normalized == "" {
			return errors.New("user_facing_types contains an empty entry")
		}

		config.userFacing[normalized] = true
	}

	for _, commitType := range config.DevelopmentTypes {
		normalized := strings.ToLower(strings.TrimSpace(commitType))
		if normalized == "" {
			return errors.New("development_types contains an empty entry")
		}

		if config.userFacing[normalized] {
			return fmt.Errorf("commit type %q is listed as both user-facing and development", normalized)
		}

		config.development[normalized] = true
	}

	config.allTypes = make([]string, 0, len(config.userFacing)+len(config.development))
	for commitType := range config.userFacing {
		config.allTypes = append(config.allTypes, commitType)
	}

	for commitType := range config.development {
		config.allTypes = append(config.allTypes, commitType)
	}

	slices.Sort(config.allTypes)

	// Cache the compiled issue ID patterns. The project prefix is
	// case-sensitive on purpose.
	key := regexp.QuoteMeta(config.IssueProject)
	config.jiraID = regexp.MustCompile(key + `-\d+`)
	config.jiraExact = regexp.MustCompile(`^` + key + `-\d+$`)

	return nil
}

// isUserFacing reports whether the (lower-cased) commit type requires an
// issue reference.
func (c *Config) isUserFacing(commitType string) bool {
	return c.userFacing[commitType]
}

// knownType reports whether the (lower-cased) commit type is recognized.
func (c *Config) knownType(commitType string) bool {
	return c.userFacing[commitType] || c.development[commitType]
}

// validTypes returns all recognized commit types sorted alphabetically.
func (c *Config) validTypes() []string {
	return c.allTypes
}
