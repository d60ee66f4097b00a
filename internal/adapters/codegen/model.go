// Package codegen renders a locale catalog into a Go source file of typed
// message accessors.
package codegen

import (
	"slices"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
)

// messageSpec is one message across all languages.
type messageSpec struct {
	// args are the placeholder names, in order of first appearance in
	// the default language's text, then in the remaining languages.
	args []string
	// texts maps language tag to that language's raw text.
	texts map[string]string
}

// groupNode is one table level of the merged catalog.
type groupNode struct {
	messages map[string]*messageSpec
	tables   map[string]*groupNode
}

func newGroupNode() *groupNode {
	return &groupNode{
		messages: make(map[string]*messageSpec),
		tables:   make(map[string]*groupNode),
	}
}

func (n *groupNode) messageKeys() []string {
	keys := make([]string, 0, len(n.messages))
	for k := range n.messages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (n *groupNode) tableKeys() []string {
	keys := make([]string, 0, len(n.tables))
	for k := range n.tables {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// mergeCatalog folds every language's tree into one union model. The
// default language is merged first so its texts define argument order.
func mergeCatalog(catalog *domain.Catalog, defaultTag string) (*groupNode, error) {
	root := newGroupNode()

	tags := catalog.Languages()
	ordered := make([]string, 0, len(tags))
	ordered = append(ordered, defaultTag)
	for _, tag := range tags {
		if tag != defaultTag {
			ordered = append(ordered, tag)
		}
	}

	for _, tag := range ordered {
		lang, ok := catalog.Language(tag)
		if !ok {
			continue
		}
		if err := mergeTree(root, lang.Tree(), tag, ""); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mergeTree(node *groupNode, tree *domain.MessageTree, tag, prefix string) error {
	for _, key := range tree.Keys() {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if text, ok := tree.Message(key); ok {
			if _, conflict := node.tables[key]; conflict {
				err := zerr.With(domain.ErrGenerateFailed, "key", path)
				return zerr.With(err, "reason", "key is a message in one language and a table in another")
			}

			spec, exists := node.messages[key]
			if !exists {
				spec = &messageSpec{texts: make(map[string]string)}
				node.messages[key] = spec
			}
			spec.texts[tag] = text
			for _, arg := range domain.MessageArgs(text) {
				if !slices.Contains(spec.args, arg) {
					spec.args = append(spec.args, arg)
				}
			}
			continue
		}

		sub, _ := tree.Table(key)
		if _, conflict := node.messages[key]; conflict {
			err := zerr.With(domain.ErrGenerateFailed, "key", path)
			return zerr.With(err, "reason", "key is a message in one language and a table in another")
		}

		child, exists := node.tables[key]
		if !exists {
			child = newGroupNode()
			node.tables[key] = child
		}
		if err := mergeTree(child, sub, tag, path); err != nil {
			return err
		}
	}

	return nil
}
