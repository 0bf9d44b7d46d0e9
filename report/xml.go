package report

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/corvee/timetrack/exclusion"
)

// XML renders every range the rules cover inside bound as an
// <exclusions> document:
//
//	<exclusions start="..." end="...">
//	  <range start="..." end="..." rule="exc monday 12:00:00-13:00:00"/>
//	</exclusions>
//
// Timestamps are RFC 3339. The first expansion error fails the whole
// document.
func XML(rules []*exclusion.Rule, bound exclusion.Range) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("exclusions")
	root.CreateAttr("start", bound.Start.Format(time.RFC3339))
	root.CreateAttr("end", bound.End.Format(time.RFC3339))

	for _, rule := range rules {
		ranges, err := rule.Ranges(bound)
		if err != nil {
			return "", fmt.Errorf("expanding '%s': %w", rule.Serialize(), err)
		}
		for _, rng := range ranges {
			el := root.CreateElement("range")
			el.CreateAttr("start", rng.Start.Format(time.RFC3339))
			el.CreateAttr("end", rng.End.Format(time.RFC3339))
			el.CreateAttr("rule", rule.Serialize())
		}
	}

	doc.Indent(2)
	return doc.WriteToString()
}
