package util

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestPercentは100を上限とする(t *testing.T) {
	if got := percent(5, 4); got != 100 {
		t.Fatalf("5/4 は 100%% として扱うべきです: got=%d", got)
	}
	if got := percent(0, 0); got != 100 {
		t.Fatalf("0/0 は 100%% として扱うべきです: got=%d", got)
	}
	if got := percent(1, 4); got != 25 {
		t.Fatalf("1/4 は 25%% になるべきです: got=%d", got)
	}
}

func TestProgressは並行して加算できる(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "audit", 50, true)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Add(1)
		}()
	}
	wg.Wait()
	p.Done()
	out := buf.String()
	if !strings.Contains(out, "[audit] 50/50 (100%)") {
		t.Fatalf("最終行に 50/50 が含まれていません: %q", out)
	}
	if !strings.HasSuffix(out, "\r\033[K") {
		t.Fatalf("Done は行を消去するべきです: %q", out)
	}
}

func TestProgress無効時は何も書かない(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "audit", 3, false)
	p.Add(1)
	p.Update(3)
	p.Done()
	if buf.Len() != 0 {
		t.Fatalf("無効な Progress が出力しました: %q", buf.String())
	}
}

func TestProgressは再描画を間引く(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "audit", 10, true)
	clock := time.Unix(0, 0)
	p.now = func() time.Time { return clock }
	p.start = clock

	p.Add(1)
	p.Add(1)
	p.Add(1)
	if got := strings.Count(buf.String(), "\r\033[K"); got != 1 {
		t.Fatalf("同一時刻の更新は 1 回だけ描画するべきです: got=%d %q", got, buf.String())
	}
	clock = clock.Add(redrawInterval)
	p.Add(1)
	if !strings.Contains(buf.String(), "[audit] 4/10 (40%)") {
		t.Fatalf("間隔経過後は描画するべきです: %q", buf.String())
	}
	p.Update(10)
	if !strings.HasSuffix(buf.String(), "[audit] 10/10 (100%) 100ms") {
		t.Fatalf("完了時は必ず描画するべきです: %q", buf.String())
	}
}

func TestShouldShowProgress(t *testing.T) {
	var buf bytes.Buffer
	cases := []struct {
		force, no, want bool
	}{
		{false, false, false},
		{true, false, true},
		{true, true, false},
		{false, true, false},
	}
	for _, tc := range cases {
		if got := ShouldShowProgress(&buf, tc.force, tc.no); got != tc.want {
			t.Fatalf("ShouldShowProgress(force=%v, no=%v)=%v want %v", tc.force, tc.no, got, tc.want)
		}
	}
}
