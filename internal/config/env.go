package config

import (
	"github.com/JaimeStill/scholar/pkg/database"
	"github.com/JaimeStill/scholar/pkg/docstore"
	"github.com/JaimeStill/scholar/pkg/logging"
	"github.com/JaimeStill/scholar/pkg/pagination"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	SSLMode:         "DATABASE_SSL_MODE",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
}

var adminDatabaseEnv = &database.Env{
	Host:            "ADMIN_DATABASE_HOST",
	Port:            "ADMIN_DATABASE_PORT",
	Name:            "ADMIN_DATABASE_NAME",
	User:            "ADMIN_DATABASE_USER",
	Password:        "ADMIN_DATABASE_PASSWORD",
	SSLMode:         "ADMIN_DATABASE_SSL_MODE",
	MaxOpenConns:    "ADMIN_DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "ADMIN_DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "ADMIN_DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "ADMIN_DATABASE_CONN_TIMEOUT",
}

var docstoreEnv = &docstore.Env{
	URI:         "DOCSTORE_URI",
	Database:    "DOCSTORE_DATABASE",
	ConnTimeout: "DOCSTORE_CONN_TIMEOUT",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
	Source: "LOGGING_ADD_SOURCE",
}

var paginationEnv = &pagination.Env{
	DefaultPageSize: "PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "PAGINATION_MAX_PAGE_SIZE",
}
