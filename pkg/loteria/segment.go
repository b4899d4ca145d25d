package loteria

import "strings"

// BlockInfo is what ExtractStructure returns: segmentation only, no bet
// recognition.
type BlockInfo struct {
	PlayerName string
	Lines      []string
	// LineNumbers holds the 1-based line number (in the preprocessed
	// text) of each entry in Lines, for DetalleApuesta.LineNumber.
	LineNumbers []int
	HasName     bool
}

// Segment partitions preprocessed text into per-player blocks using the
// name-line/total-line heuristics below. It returns a fatal *ParserError
// if the block count would exceed cfg.MaxJugadores.
func Segment(text string, cfg *Config) ([]BlockInfo, error) {
	lines := strings.Split(text, "\n")

	if !anyNameLine(lines) {
		blocks := oneAnonymousBlock(lines)
		if err := checkMaxJugadores(blocks, cfg); err != nil {
			return nil, err
		}
		return blocks, nil
	}

	var blocks []BlockInfo
	var current *BlockInfo

	flush := func() {
		// A name-only block must survive even with zero bet lines, so it
		// still produces one Jugada with no details; only a block that
		// never got a name AND never got a line is a no-op.
		if current != nil && (current.HasName || len(current.Lines) > 0) {
			blocks = append(blocks, *current)
		}
		current = nil
	}

	for idx, raw := range lines {
		lineNo := idx + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			continue
		}

		if looksLikeName(line, 0.6) && !isTotalLine(line) {
			flush()
			current = &BlockInfo{PlayerName: line, HasName: true}
			continue
		}

		if current == nil {
			current = &BlockInfo{PlayerName: "Desconocido", HasName: false}
		}
		current.Lines = append(current.Lines, line)
		current.LineNumbers = append(current.LineNumbers, lineNo)
	}
	flush()

	if err := checkMaxJugadores(blocks, cfg); err != nil {
		return nil, err
	}
	return blocks, nil
}

func anyNameLine(lines []string) bool {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line != "" && looksLikeName(line, 0.6) && !isTotalLine(line) {
			return true
		}
	}
	return false
}

// oneAnonymousBlock handles the case where no name-line appears anywhere
// in the input: all content forms one block under player Desconocido,
// and blank-line separation is suspended, unlike the normal
// name-line-driven segmentation loop above.
func oneAnonymousBlock(lines []string) []BlockInfo {
	blk := BlockInfo{PlayerName: "Desconocido"}
	for idx, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		blk.Lines = append(blk.Lines, line)
		blk.LineNumbers = append(blk.LineNumbers, idx+1)
	}
	if len(blk.Lines) == 0 {
		return nil
	}
	return []BlockInfo{blk}
}

func checkMaxJugadores(blocks []BlockInfo, cfg *Config) error {
	if len(blocks) > cfg.MaxJugadores {
		return &ParserError{Message: "too many jugadores", Context: "max_jugadores exceeded"}
	}
	return nil
}

func isTotalLine(line string) bool {
	return Patterns.Total.MatchString(line)
}

// TotalLine extracts the declared total from a total-line, if line
// matches the TOTAL pattern.
func TotalLine(line string) (string, bool) {
	m := Patterns.Total.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
