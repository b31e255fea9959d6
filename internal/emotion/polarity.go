package emotion

// Polarity buckets an emotion name for sentiment-ratio calculations.
type Polarity string

const (
	PolarityPositive Polarity = "+"
	PolarityNegative Polarity = "-"
	PolarityNeutral  Polarity = "neutral"
)

// The polarity tables are fixed business data. Scores produced against them
// feed stored reports, so membership must not drift between releases.
var positiveEmotions = []string{
	"Admiration", "Adoration", "Aesthetic Appreciation", "Amusement", "Awe", "Calmness", "Concentration",
	"Contemplation", "Contentment", "Craving", "Desire", "Determination", "Ecstasy", "Entrancement",
	"Excitement", "Interest", "Joy", "Love", "Nostalgia", "Pride", "Realization", "Relief", "Romance",
	"Satisfaction", "Surprise (positive)", "Sympathy", "Triumph",
}

var negativeEmotions = []string{
	"Anger", "Anxiety", "Awkwardness", "Boredom", "Confusion", "Contempt", "Disappointment",
	"Disgust", "Distress", "Doubt", "Embarrassment", "Empathic Pain", "Envy", "Fear", "Guilt",
	"Horror", "Pain", "Sadness", "Shame", "Surprise (negative)", "Tiredness",
}

var polarityByName = func() map[string]Polarity {
	m := make(map[string]Polarity, len(positiveEmotions)+len(negativeEmotions))
	for _, name := range positiveEmotions {
		m[name] = PolarityPositive
	}
	for _, name := range negativeEmotions {
		m[name] = PolarityNegative
	}
	return m
}()

// Classify returns the polarity for an emotion name. Unknown names are
// neutral.
func Classify(name string) Polarity {
	if p, ok := polarityByName[name]; ok {
		return p
	}
	return PolarityNeutral
}
