package adapters

import "testing"

func TestRedisOptions(t *testing.T) {
	cases := []struct {
		in       string
		wantAddr string
		wantDB   int
	}{
		{"localhost:6379", "localhost:6379", 0},
		{"redis://cache:6380/2", "cache:6380", 2},
	}
	for _, tc := range cases {
		opts, err := redisOptions(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if opts.Addr != tc.wantAddr || opts.DB != tc.wantDB {
			t.Fatalf("%s: got addr=%s db=%d", tc.in, opts.Addr, opts.DB)
		}
	}
	if _, err := redisOptions("redis://cache:6379/notanumber"); err == nil {
		t.Fatalf("expected error for bad db number")
	}
}
