package config

import "github.com/ilyakaznacheev/cleanenv"

// Config carries everything the service reads from the environment. Defaults
// are local-friendly: a fresh checkout talks to DynamoDB Local and a mocked
// project service without any setup.
type Config struct {
	ServerPort string `env:"SERVER_PORT" env-default:"8080"`

	AWSRegion          string `env:"AWS_REGION" env-default:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	EstimatesTable     string `env:"ESTIMATES_TABLE" env-default:"estimates"`
	LineItemsTable     string `env:"LINE_ITEMS_TABLE" env-default:"line_items"`
	EpicsTable         string `env:"EPICS_TABLE" env-default:"epics"`
	StagesTable        string `env:"STAGES_TABLE" env-default:"stages"`
	MilestonesTable    string `env:"MILESTONES_TABLE" env-default:"milestones"`
	RolesTable         string `env:"ROLES_TABLE" env-default:"roles"`
	UsersTable         string `env:"USERS_TABLE" env-default:"users"`
	RateOverridesTable string `env:"RATE_OVERRIDES_TABLE" env-default:"rate_overrides"`

	ProjectServiceURL  string `env:"PROJECT_SERVICE_URL"`
	ProjectServiceMock bool   `env:"PROJECT_SERVICE_MOCK" env-default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
