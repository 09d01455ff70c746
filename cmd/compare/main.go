// compare は2つのサムネイルを解析APIで解析し、比較結果をJSONで出力します。
//
// 使い方:
//
//	compare -a https://youtu.be/xxxx -b ./thumb.png
//
// 引数がローカルのファイルとして存在すればアップロードし、そうでなければYouTube URLとして扱います。
// どちらかの解析が失敗した場合は終了コード1で終了します。
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"thumblytics/internal/app/di"
	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	analysisusecase "thumblytics/internal/feature/analysis/usecase"
	comparisonusecase "thumblytics/internal/feature/comparison/usecase"
	"thumblytics/internal/platform/config"
	"thumblytics/internal/platform/logger"
)

var errUsage = errors.New("both -a and -b are required")

func main() {
	config.LoadDotEnv()
	_, closeLog := logger.Setup(logger.LoadConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], di.NewAnalyzer(), os.Stdout, os.Stderr)
	stop()
	_ = closeLog()
	os.Exit(code)
}

// run はCLI本体です。終了コードを返します。
func run(ctx context.Context, args []string, analyzer analysisusecase.ThumbnailAnalyzer, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	a := fs.String("a", "", "thumbnail A (YouTube URL or image path)")
	b := fs.String("b", "", "thumbnail B (YouTube URL or image path)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *a == "" || *b == "" {
		fmt.Fprintln(stderr, errUsage)
		fs.Usage()
		return 2
	}

	inA, err := parseInput(*a)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	inB, err := parseInput(*b)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	// CLIでは履歴を記録しない
	uc := comparisonusecase.NewComparisonUsecase(analysisusecase.NewAnalysisUsecase(analyzer, nil))
	snap := uc.CompareInputs(ctx, inA, inB)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		slog.Error("failed to write result", "error", err)
		return 1
	}
	if !snap.Complete() {
		return 1
	}
	return 0
}

// parseInput は引数をローカルファイルかYouTube URLのどちらかに解釈します。
func parseInput(arg string) (analysisentity.Input, error) {
	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		return analysisentity.Input{YouTubeURL: arg}, nil
	}
	if info.Size() > analysisusecase.MaxImageSize {
		return analysisentity.Input{}, fmt.Errorf("%s: image size exceeds maximum of %d bytes", arg, analysisusecase.MaxImageSize)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return analysisentity.Input{}, fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return analysisentity.Input{File: &analysisentity.ImageFile{Name: filepath.Base(arg), Data: data}}, nil
}
