package download

import (
	"context"
	"os"
	"sync"
)

// fakeTool imitates yt-dlp by writing files next to the -o base path
type fakeTool struct {
	mu sync.Mutex

	// produce maps a URL to the extensions written for it
	produce map[string][]string
	// block makes the call wait for the context to end
	block map[string]bool
	err   error
	calls [][]string
}

func newFakeTool() *fakeTool {
	return &fakeTool{
		produce: make(map[string][]string),
		block:   make(map[string]bool),
	}
}

func (f *fakeTool) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	url := args[len(args)-1]
	if f.block[url] {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	base := argAfter(args, OutputFlag)
	for _, ext := range f.produce[url] {
		if err := os.WriteFile(base+"."+ext, []byte("thumb-"+ext), 0644); err != nil {
			return nil, err
		}
	}
	return []byte("[info] done\n"), f.err
}

func (f *fakeTool) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func argAfter(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

// fakeResolver reports a fixed availability
type fakeResolver struct {
	available   bool
	skipInstall bool
	calls       int
}

func (r *fakeResolver) EnsureAvailable(ctx context.Context) bool {
	r.calls++
	return r.available
}

func (r *fakeResolver) Tool() string { return "yt-dlp" }

func (r *fakeResolver) ManualInstallHint() string {
	return "Please install manually: pip3 install yt-dlp"
}

func (r *fakeResolver) InstallSkipped() bool { return r.skipInstall }

// liarFetcher reports success without writing anything
type liarFetcher struct{}

func (liarFetcher) Fetch(ctx context.Context, url, dest string) FetchResult {
	return FetchResult{Path: dest}
}
