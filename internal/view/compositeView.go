package view

type CompositeView struct {
	views   []View
	footers []View
}

func NewCompositeView(views []View) *CompositeView {
	return &CompositeView{views: views}
}

func (cv *CompositeView) AddView(v View) {
	cv.views = append(cv.views, v)
}

// AddFooter adds a view rendered after all regular views.
func (cv *CompositeView) AddFooter(v View) {
	cv.footers = append(cv.footers, v)
}

func (cv *CompositeView) Render(w int) int {
	totalLines := 0
	for _, view := range cv.views {
		totalLines += view.Render(w)
	}
	for _, footer := range cv.footers {
		totalLines += footer.Render(w)
	}
	return totalLines
}
