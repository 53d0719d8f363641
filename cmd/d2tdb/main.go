// Package main provides the d2tdb CLI application.
// d2tdb loads canned analyses into the datasets2tools PostgreSQL database.
package main

import "github.com/d2tools/d2tdb/cmd"

func main() {
	cmd.Execute()
}
