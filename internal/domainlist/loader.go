// Package domainlist loads the disposable and free domain sets the
// classifier consumes. Lists are plain text files with one domain per line;
// blank lines and lines starting with '#' are ignored.
package domainlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/classifier"
	"github.com/nephila016/emailcanon/internal/debug"
)

// Kind tells which set a source feeds.
type Kind string

const (
	KindDisposable Kind = "disposable"
	KindFree       Kind = "free"
)

// maxParallelReads bounds concurrent file reads during Load.
const maxParallelReads = 4

type Source struct {
	Name     string
	Path     string
	Kind     Kind
	Optional bool
}

type SourceStats struct {
	Name    string
	Kind    Kind
	Domains int
	Skipped int
}

// Lists is an immutable snapshot of the merged domain sets.
type Lists struct {
	Disposable classifier.DomainSet
	Free       classifier.DomainSet
	Sources    []SourceStats
}

// Classifier returns a classifier over this snapshot.
func (l *Lists) Classifier() *classifier.Classifier {
	return classifier.New(l.Free, l.Disposable)
}

type readResult struct {
	domains []string
	skipped int
	missing bool
}

// Load reads every source concurrently and merges them with the built-in
// manual lists. Failures of individual sources are collected and returned
// together; nothing is returned unless every required source loaded.
func Load(ctx context.Context, sources []Source) (*Lists, error) {
	log := debug.GetLogger()
	timer := log.StartTimer("LISTS", fmt.Sprintf("loading %d domain list sources", len(sources)))
	defer timer.Stop()

	results := make([]readResult, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if src.Kind != KindDisposable && src.Kind != KindFree {
				errs[i] = fmt.Errorf("source %s: unknown kind %q", src.Name, src.Kind)
				return nil
			}
			res, err := readFile(gctx, src.Path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) && src.Optional {
					log.Info("LISTS", "Optional source %s not found at %s, skipping", src.Name, src.Path)
					results[i] = readResult{missing: true}
					return nil
				}
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				errs[i] = fmt.Errorf("source %s: %w", src.Name, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		log.Error("LISTS", "%v", err)
		return nil, err
	}

	builtin := Builtin()
	disposable := []classifier.DomainSet{builtin.Disposable}
	free := []classifier.DomainSet{builtin.Free}
	stats := builtin.Sources

	for i, src := range sources {
		res := results[i]
		if res.missing {
			continue
		}
		set := classifier.NewDomainSet(res.domains...)
		if src.Kind == KindDisposable {
			disposable = append(disposable, set)
		} else {
			free = append(free, set)
		}
		stats = append(stats, SourceStats{Name: src.Name, Kind: src.Kind, Domains: set.Len(), Skipped: res.skipped})
		log.Detail("LISTS", "%s (%s): %d domains, %d skipped", src.Name, src.Kind, set.Len(), res.skipped)
	}

	lists := &Lists{
		Disposable: disposable[0].Union(disposable[1:]...),
		Free:       free[0].Union(free[1:]...),
		Sources:    stats,
	}
	log.Success("LISTS", "Loaded %d disposable and %d free domains", lists.Disposable.Len(), lists.Free.Len())
	return lists, nil
}

func readFile(ctx context.Context, path string) (readResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return readResult{}, err
	}
	defer f.Close()

	domains, skipped, err := Read(ctx, f)
	if err != nil {
		return readResult{}, err
	}
	return readResult{domains: domains, skipped: skipped}, nil
}

// Read parses a domain list and returns its domains in file order. Lines
// that are not valid mail domains are counted in skipped.
func Read(ctx context.Context, r io.Reader) (domains []string, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for n := 0; scanner.Scan(); n++ {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}

		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !isDomain(line) {
			debug.Trace("LISTS", "Skipping invalid domain: %q", line)
			skipped++
			continue
		}
		domains = append(domains, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read list: %w", err)
	}
	return domains, skipped, nil
}

func isDomain(domain string) bool {
	a, err := address.Parse("test@" + domain)
	return err == nil && a.HasValidDomain()
}
