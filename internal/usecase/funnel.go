package usecase

import (
	"fmt"
	"strings"
)

// FunnelStep — шаг воронки, по которому считаем уникальных пользователей.
type FunnelStep string

const (
	FunnelStart           FunnelStep = "start"
	FunnelServices        FunnelStep = "services"
	FunnelServiceSelected FunnelStep = "service_selected"
	FunnelEnteredName     FunnelStep = "entered_name"
	FunnelCompleted       FunnelStep = "completed"
)

type FunnelRepository interface {
	Hit(step FunnelStep, userID int64) error
	Counts() map[FunnelStep]int
}

type FunnelUsecase struct {
	repo  FunnelRepository
	order []FunnelStep
}

func NewFunnelUsecase(repo FunnelRepository) *FunnelUsecase {
	return &FunnelUsecase{
		repo: repo,
		order: []FunnelStep{
			FunnelStart,
			FunnelServices,
			FunnelServiceSelected,
			FunnelEnteredName,
			FunnelCompleted,
		},
	}
}

func (u *FunnelUsecase) Reach(userID int64, step FunnelStep) {
	if step == "" {
		return
	}
	_ = u.repo.Hit(step, userID)
}

func (u *FunnelUsecase) Chart() string {
	counts := u.repo.Counts()
	if len(counts) == 0 {
		return "Данных по воронке пока нет"
	}
	// база — счетчик первого шага
	var base int
	if len(u.order) > 0 {
		base = counts[u.order[0]]
	}
	if base == 0 {
		// найти максимальный как базу
		for _, s := range u.order {
			if counts[s] > base {
				base = counts[s]
			}
		}
	}
	var prev int
	var b strings.Builder
	b.WriteString("Воронка по шагам:\n")
	for i, s := range u.order {
		c := counts[s]
		relBase := percent(c, base)
		relPrev := 0
		if i == 0 {
			relPrev = 100
		} else if prev > 0 {
			relPrev = percent(c, prev)
		}
		bar := bar20(c, base)
		fmt.Fprintf(&b, "- %s: %d | %3d%% от базового | %3d%% от пред. %s\n", stepLabel(s), c, relBase, relPrev, bar)
		prev = c
	}
	return b.String()
}

// GraphData возвращает метки и значения по порядку шагов для построения графика
func (u *FunnelUsecase) GraphData() ([]string, []int) {
	counts := u.repo.Counts()
	labels := make([]string, 0, len(u.order))
	values := make([]int, 0, len(u.order))
	for _, s := range u.order {
		labels = append(labels, stepLabel(s))
		values = append(values, counts[s])
	}
	return labels, values
}

func percent(a, b int) int {
	if b <= 0 {
		return 0
	}
	return int((100 * a) / b)
}

func bar20(val, max int) string {
	if max <= 0 {
		return ""
	}
	filled := (20 * val) / max
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 20-filled) + "]"
}

func stepLabel(s FunnelStep) string {
	switch s {
	case FunnelStart:
		return "Старт"
	case FunnelServices:
		return "Услуги"
	case FunnelServiceSelected:
		return "Выбор услуги"
	case FunnelEnteredName:
		return "Имя"
	case FunnelCompleted:
		return "Заявка"
	default:
		return string(s)
	}
}
