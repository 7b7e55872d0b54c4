package resources

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glyphart/core/font"
)

// PreferredFonts lists name fragments of fonts suited for glyph patterns.
// Nerd Font variants carry the private-use icon codepoints this tool is
// usually run for.
var PreferredFonts = []string{"Caskaydia", "Cascadia", "Nerd", "Code"}

// listCandidateFonts scans the system font folders for scalable fonts whose
// file name contains one of the preferred name fragments. Candidates are
// returned in order of descending preference.
func listCandidateFonts() []font.Descriptor {
	var candidates []font.Descriptor
	for _, fpath := range findfont.List() {
		low := strings.ToLower(filepath.Base(fpath))
		if !strings.HasSuffix(low, ".ttf") && !strings.HasSuffix(low, ".otf") {
			continue
		}
		if !matchesPreferred(low) {
			continue
		}
		candidates = append(candidates, font.Descriptor{
			Family: filepath.Base(fpath),
			Path:   fpath,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		hi, li := scoreCandidate(candidates[i].Family)
		hj, lj := scoreCandidate(candidates[j].Family)
		if hi != hj {
			return hi > hj
		}
		return li < lj // shorter names win ties
	})
	tracer().Infof("%d candidate pattern fonts found", len(candidates))
	return candidates
}

func matchesPreferred(lowname string) bool {
	for _, pref := range PreferredFonts {
		if strings.Contains(lowname, strings.ToLower(pref)) {
			return true
		}
	}
	return false
}

// scoreCandidate ranks a font file name: the more preferred fragments it
// contains, the better.
func scoreCandidate(basename string) (hits int, length int) {
	low := strings.ToLower(basename)
	for _, pref := range PreferredFonts {
		if strings.Contains(low, strings.ToLower(pref)) {
			hits++
		}
	}
	return hits, len(low)
}
