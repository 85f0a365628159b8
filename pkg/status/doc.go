/*
Package status owns the file system side of a rewrite and the record of what
happened to each file.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Tally  |
	| (.bak/io) |           | (Report)|
	+-----------+           +---------+

🎯 Purpose:
- Reads candidate files relative to the scan root
- Writes the untouched original to <path>.bak before any overwrite
- Replaces files atomically (temp file + rename) keeping their mode
- Tracks the outcome of every file and tallies them for the summary

📝 Invariant:
A file is only overwritten after its backup has been written. Callers must
call BackupFile and check its error before WriteFileAtomic.

🔍 Example:

	mgr := status.New("apps/api-gateway/src", ".bak")
	original, err := mgr.ReadFile(ctx, "routes/users.ts")
	...
	if _, err := mgr.BackupFile(ctx, "routes/users.ts", original); err != nil {
		return err
	}
	err = mgr.WriteFileAtomic(ctx, "routes/users.ts", rewritten)
*/
package status
