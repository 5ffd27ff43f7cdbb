// Package hosts edits the static hostname file (/etc/hosts, or
// %SystemRoot%\System32\drivers\etc\hosts on Windows) without losing its
// comments and blank lines.
//
// Every call is a fresh load, mutate, save cycle: the file is parsed into
// ordered Line records, the mutation runs over that slice and the result is
// written back in full. Saved files are normalized: comments get exactly one
// space after their leading '#', blank lines become empty and no trailing
// line feed is written.
//
// Usage:
//
//	svc, err := hosts.New("", hosts.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	// Idempotent: a second identical call writes nothing.
//	err = svc.Add(ctx, "127.0.0.1", "api.local")
//
//	// Remove every mapping of an ip, or narrow it with a Filter.
//	err = svc.Remove(ctx, "10.0.0.5", hosts.Pattern(regexp.MustCompile(`^f`)))
//
//	mappings, err := svc.Get(ctx, "127.0.0.1", nil)
//	ips, err := svc.IPs(ctx)
//
// Several edits can share one load and one save through Service.Batch.
//
// When the process is a `go run` or `go test` binary, writes aimed at the
// system hosts file are redirected to a copy under the temp directory. Use
// WithDevSafety(false) to opt out.
package hosts
