// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package schema centralizes table and column identifiers for the database.

Each table is described by a struct of column names plus a package-level
instance. Repositories compose SQL from these identifiers instead of string
literals, so a schema rename is a single-file change and typos become
compile errors.
*/
package schema
