package asm

// Labels maps a label name to the index of the instruction that follows its
// definition.
type Labels map[string]int

// ScanLabels records every label definition. A label takes the index of the
// next instruction; a label after the last instruction gets the instruction
// count. Labels that share a position all get the same index.
func ScanLabels(tokens []Token) (Labels, error) {
	labels := make(Labels)
	defined := make(map[string]Span)
	index := 0

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpcode:
			index++
		case TokenLabelDef:
			if first, dup := defined[tok.Text]; dup {
				return nil, &DuplicateLabelError{
					Label: tok.Text,
					Span:  tok.Span,
					First: first,
				}
			}

			defined[tok.Text] = tok.Span
			labels[tok.Text] = index
		}
	}

	return labels, nil
}
