package password

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrorSentinel replaces the hash of a batch entry whose hashing failed.
const ErrorSentinel = "ERROR"

// BatchResult is the outcome of hashing one batch entry.
type BatchResult struct {
	Hash string
	Err  error
}

// HashEach hashes every distinct password on at most workers goroutines
// (GOMAXPROCS when workers <= 0). Duplicate inputs collapse into one entry.
// A failing entry never affects the others.
func (a *Argon2) HashEach(passwords []string, workers int) map[string]BatchResult {
	distinct := dedupe(passwords)
	results := make([]BatchResult, len(distinct))

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, pw := range distinct {
		i, pw := i, pw
		g.Go(func() error {
			hash, err := a.Hash(pw)
			results[i] = BatchResult{Hash: hash, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]BatchResult, len(distinct))
	for i, pw := range distinct {
		out[pw] = results[i]
	}
	return out
}

// BatchHash is HashEach with failures folded into ErrorSentinel.
func (a *Argon2) BatchHash(passwords []string, workers int) map[string]string {
	return Flatten(a.HashEach(passwords, workers))
}

// Flatten converts per-entry results to the hash-or-sentinel form.
func Flatten(results map[string]BatchResult) map[string]string {
	out := make(map[string]string, len(results))
	for pw, r := range results {
		if r.Err != nil {
			out[pw] = ErrorSentinel
			continue
		}
		out[pw] = r.Hash
	}
	return out
}

func dedupe(passwords []string) []string {
	seen := make(map[string]struct{}, len(passwords))
	out := make([]string, 0, len(passwords))
	for _, pw := range passwords {
		if _, ok := seen[pw]; ok {
			continue
		}
		seen[pw] = struct{}{}
		out = append(out, pw)
	}
	return out
}
