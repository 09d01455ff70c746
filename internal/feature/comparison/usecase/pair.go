package usecase

import (
	"sync"

	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/feature/comparison/domain/entity"
)

// Side は比較の片側を表します。
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// SideState は片側の最新の解析結果、またはエラーです。
type SideState struct {
	Result *analysisentity.AnalysisResult `json:"result,omitempty"`
	Error  string                         `json:"error,omitempty"`
}

// PairSnapshot はPairのある時点の状態です。両側が揃っている場合のみComparisonを持ちます。
type PairSnapshot struct {
	A          SideState                `json:"a"`
	B          SideState                `json:"b"`
	Comparison *entity.ComparisonResult `json:"comparison,omitempty"`
}

// Complete は両側の解析が成功し、比較結果があるかを返します。
func (s PairSnapshot) Complete() bool {
	return s.Comparison != nil
}

// Pair は2つの独立した解析の完了を結合します。
// 各側は最後に書き込まれた結果が有効になり（last-write-wins）、
// どちらかが完了するたびに、両側が揃っていれば比較を同期的に再計算します。
// 比較はCompareの純粋関数なので、完了の順序に依存しません。
type Pair struct {
	mu         sync.Mutex
	a, b       *analysisentity.AnalysisResult
	errA, errB error
	comparison *entity.ComparisonResult
}

// NewPair は空のPairを生成します。
func NewPair() *Pair {
	return &Pair{}
}

// Set は片側の完了を記録し、現在のスナップショットを返します。
// errがnilでない場合、その側の以前の結果は破棄されます。
func (p *Pair) Set(side Side, result *analysisentity.AnalysisResult, err error) PairSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		result = nil
	}
	switch side {
	case SideA:
		p.a, p.errA = result, err
	case SideB:
		p.b, p.errB = result, err
	}

	p.comparison = nil
	if p.a != nil && p.b != nil {
		c := Compare(*p.a, *p.b)
		p.comparison = &c
	}
	return p.snapshotLocked()
}

// Snapshot は現在の状態を返します。
func (p *Pair) Snapshot() PairSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Pair) snapshotLocked() PairSnapshot {
	return PairSnapshot{
		A:          sideState(p.a, p.errA),
		B:          sideState(p.b, p.errB),
		Comparison: p.comparison,
	}
}

func sideState(r *analysisentity.AnalysisResult, err error) SideState {
	if err != nil {
		return SideState{Error: err.Error()}
	}
	return SideState{Result: r}
}
