// Package reveal отмечает блоки страницы видимыми, когда они впервые
// попадают в область просмотра. Отметка не снимается.
package reveal

// DefaultThreshold доля блока, которая должна оказаться в области просмотра
const DefaultThreshold = 0.1

type element struct {
	top     int
	height  int
	visible bool
}

// Observer следит за положением блоков относительно области просмотра.
// Координаты в строках от начала страницы.
type Observer struct {
	threshold float64
	elements  map[string]*element
	order     []string
}

// NewObserver создает наблюдатель с порогом видимости; некорректный
// порог заменяется значением по умолчанию
func NewObserver(threshold float64) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Observer{
		threshold: threshold,
		elements:  map[string]*element{},
	}
}

// Threshold текущий порог видимости
func (o *Observer) Threshold() float64 {
	return o.threshold
}

// Observe начинает наблюдение за блоком или обновляет его положение.
// Уже показанный блок остаётся показанным.
func (o *Observer) Observe(id string, top, height int) {
	if el, ok := o.elements[id]; ok {
		el.top = top
		el.height = height
		return
	}
	o.elements[id] = &element{top: top, height: height}
	o.order = append(o.order, id)
}

// Update пересчитывает видимость для области [viewTop, viewTop+viewHeight)
// и возвращает блоки, показанные впервые, в порядке регистрации
func (o *Observer) Update(viewTop, viewHeight int) []string {
	if viewHeight <= 0 {
		return nil
	}
	var revealed []string
	for _, id := range o.order {
		el := o.elements[id]
		if el.visible {
			continue
		}
		if o.ratio(el, viewTop, viewHeight) >= o.threshold {
			el.visible = true
			revealed = append(revealed, id)
		}
	}
	return revealed
}

// ratio доля блока внутри области просмотра
func (o *Observer) ratio(el *element, viewTop, viewHeight int) float64 {
	if el.height <= 0 {
		if el.top >= viewTop && el.top < viewTop+viewHeight {
			return 1
		}
		return 0
	}
	start := max(el.top, viewTop)
	end := min(el.top+el.height, viewTop+viewHeight)
	if end <= start {
		return 0
	}
	return float64(end-start) / float64(el.height)
}

// RevealAll помечает блоки видимыми независимо от положения
func (o *Observer) RevealAll(ids ...string) {
	for _, id := range ids {
		if el, ok := o.elements[id]; ok {
			el.visible = true
		}
	}
}

// Visible сообщает, был ли блок показан
func (o *Observer) Visible(id string) bool {
	el, ok := o.elements[id]
	return ok && el.visible
}

// Observed сообщает, наблюдается ли блок
func (o *Observer) Observed(id string) bool {
	_, ok := o.elements[id]
	return ok
}
