package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Seconds représente une durée en secondes (fraction autorisée).
type Seconds float64

// TimestampHHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres minimum par composant).
// La fraction de seconde est tronquée, pas arrondie.
// Exemple : 65 -> "00:01:05", 3661.9 -> "01:01:01", 360000 -> "100:00:00".
//
// Les heures ne sont pas bornées : elles restent en float64 et sont écrites en
// entier exact, sans passer par un int64 qui déborderait.
func (s Seconds) TimestampHHMMSS() string {
	total := float64(s)
	m := int64(math.Floor(floorMod(total, 3600) / 60))
	sec := int64(math.Floor(floorMod(total, 60)))
	return fmt.Sprintf("%s:%02d:%02d", formatHours(math.Floor(total/3600)), m, sec)
}

// formatHours écrit h (entier) sur au moins 2 caractères, comme %02d.
func formatHours(h float64) string {
	if h == 0 {
		h = 0 // -0 -> 0
	}
	out := strconv.FormatFloat(h, 'f', 0, 64)
	if len(out) < 2 {
		out = "0" + out
	}
	return out
}

// FormatTimestamp : forme fonction de Seconds.TimestampHHMMSS.
func FormatTimestamp(seconds float64) string {
	return Seconds(seconds).TimestampHHMMSS()
}

// floorMod : modulo au sens mathématique (résultat du signe du diviseur).
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// ParseTimecode convertit un timecode texte en secondes.
// Formes acceptées :
//   - "H:MM:SS(.mmm)"
//   - "M:SS(.mmm)"
//   - "SS(.mmm)" (nombre de secondes brut)
//
// Heures et minutes sont entières, seules les secondes peuvent avoir une fraction.
// Toute erreur de parsing retourne 0 : le parsing est "best-effort" et ne doit
// jamais interrompre un traitement par lot.
func ParseTimecode(s string) Seconds {
	parts := strings.Split(strings.TrimSpace(s), ":")

	var h, m int64
	var sec float64
	var err error

	switch len(parts) {
	case 3:
		if h, err = strconv.ParseInt(parts[0], 10, 64); err != nil {
			return 0
		}
		if m, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
			return 0
		}
		if sec, err = parseSecondsPart(parts[2]); err != nil {
			return 0
		}
	case 2:
		if m, err = strconv.ParseInt(parts[0], 10, 64); err != nil {
			return 0
		}
		if sec, err = parseSecondsPart(parts[1]); err != nil {
			return 0
		}
	case 1:
		if sec, err = parseSecondsPart(parts[0]); err != nil {
			return 0
		}
	default:
		return 0
	}

	return Seconds(float64(h*3600+m*60) + sec)
}

// parseSecondsPart refuse aussi NaN et ±Inf que strconv accepte.
func parseSecondsPart(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("valeur non finie: %q", s)
	}
	return v, nil
}
