/*
Package config holds the compiled-in settings of a codemod run.

There is no configuration file. Default returns the values the tool ships
with and Validate normalises a Config before it reaches the runner, so tests
can build their own Config against a temporary tree.

	cfg := config.Default()
	cfg.Root = "/tmp/project/src"
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
