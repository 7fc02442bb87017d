package nodes

import (
	"strings"

	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
)

// FAQPage builds a FAQPage node from extracted question/answer pairs. Entries
// with a blank question or blank answer are dropped entirely; no surviving
// entries means no node.
func FAQPage(pairs []source.QA, ctx model.PageContext) model.Node {
	questions := questionNodes(pairs)
	if len(questions) == 0 {
		return nil
	}
	return model.Node{
		"@type":      "FAQPage",
		"name":       ctx.Title,
		"url":        ctx.URL,
		"mainEntity": questions,
	}
}

// QAPage builds a QAPage node. The first surviving pair becomes the main
// Question with its accepted answer; a QAPage carries exactly one question.
func QAPage(pairs []source.QA, ctx model.PageContext) model.Node {
	questions := questionNodes(pairs)
	if len(questions) == 0 {
		return nil
	}
	main := questions[0]
	main["answerCount"] = 1
	return model.Node{
		"@type":      "QAPage",
		"name":       ctx.Title,
		"url":        ctx.URL,
		"mainEntity": main,
	}
}

func questionNodes(pairs []source.QA) []model.Node {
	var out []model.Node
	for _, qa := range pairs {
		q := strings.TrimSpace(qa.Question)
		a := strings.TrimSpace(qa.Answer)
		if q == "" || a == "" {
			continue
		}
		out = append(out, model.Node{
			"@type": "Question",
			"name":  q,
			"acceptedAnswer": model.Node{
				"@type": "Answer",
				"text":  a,
			},
		})
	}
	return out
}
