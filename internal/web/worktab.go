package web

import "github.com/PavanTalluri45/portfolio/internal/content"

type tabInfo struct {
	Key   string
	Label string
}

// workTabs are the case study panels in display order.
var workTabs = []tabInfo{
	{Key: "features", Label: "Features"},
	{Key: "architecture", Label: "Architecture"},
	{Key: "stack", Label: "Tech Stack"},
}

type workTabView struct {
	Index int
	Study content.CaseStudy
	Tab   string
	Items []string
}

func newWorkTab(index int, study content.CaseStudy, key string) (workTabView, bool) {
	v := workTabView{Index: index, Study: study, Tab: key}
	switch key {
	case "features":
		v.Items = study.Features
	case "architecture":
		v.Items = study.Architecture
	case "stack":
		v.Items = study.Stack
	default:
		return workTabView{}, false
	}
	return v, true
}

// firstWorkTab is the panel a case study card opens on.
func firstWorkTab(index int, study content.CaseStudy) workTabView {
	v, _ := newWorkTab(index, study, workTabs[0].Key)
	return v
}
