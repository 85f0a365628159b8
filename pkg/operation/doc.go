/*
Package operation implements the singleton migration over a source tree.

	+-------------+
	|  Discover   |
	| (*.ts, rec) |
	+------+------+
	       |
	+------+------+
	|   Process   |
	| (Transform) |
	+------+------+
	       |
	+------+------+
	|   Status    |
	| (.bak/write)|
	+-------------+

🔄 Flow:
1. Refuse to start when the root directory is missing
2. Glob files with the configured extension, drop excluded paths and files
   without the construction pattern
3. For each candidate, one at a time: skip files that already import the
   singleton, compute the relative import path, apply the rewrite rules
4. Changed files get a .bak copy of the original, then are replaced
5. Print a line per file and a summary of the tally

⚡ Failure handling:
- A file that cannot be read during discovery is reported and left out
- A file whose backup or write fails is marked failed and the run goes on;
  Execute returns an error at the end so the process exits non-zero
- A cancelled context stops the run before the next file

Rerunning after a partial failure is safe: migrated files are skipped.

🔍 Example:

	mgr := status.New(cfg.Root, cfg.BackupSuffix)
	op := operation.NewMigrateOperation(operation.Options{
		Config: cfg,
		Files:  mgr,
		Status: mgr,
	})
	err := operation.NewRunner(&logger).Run(ctx, op)
*/
package operation
