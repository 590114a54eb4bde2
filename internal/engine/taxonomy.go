package engine

// Keyword taxonomies for conversation signal extraction. Ordered slices, not
// maps: extraction order must be deterministic so explanation lists come out
// identical across runs. Loaded once, read-only afterwards.

// conditionTerm ties a transcript keyword to the clinical domain it signals.
type conditionTerm struct {
	Term   string
	Domain string
}

var conditionTaxonomy = []conditionTerm{
	{"depressed", "depression"},
	{"depression", "depression"},
	{"hopeless", "depression"},
	{"worthless", "depression"},
	{"no energy", "depression"},
	{"anxious", "anxiety"},
	{"anxiety", "anxiety"},
	{"worrying", "anxiety"},
	{"on edge", "anxiety"},
	{"adhd", "adhd"},
	{"can't focus", "adhd"},
	{"easily distracted", "adhd"},
	{"drinking", "alcohol-use"},
	{"alcohol", "alcohol-use"},
	{"hungover", "alcohol-use"},
	{"binge", "eating"},
	{"eating", "eating"},
	{"appetite", "eating"},
	{"drugs", "drug-use"},
	{"substance", "drug-use"},
	{"can't sleep", "insomnia"},
	{"insomnia", "insomnia"},
	{"awake at night", "insomnia"},
	{"burnout", "burnout"},
	{"burned out", "burnout"},
	{"overworked", "burnout"},
	{"manic", "bipolar"},
	{"bipolar", "bipolar"},
	{"mood swings", "bipolar"},
	{"obsessive", "ocd"},
	{"compulsive", "ocd"},
	{"intrusive thoughts", "ocd"},
	{"rituals", "ocd"},
	{"trauma", "ptsd"},
	{"ptsd", "ptsd"},
	{"flashback", "ptsd"},
	{"nightmares", "ptsd"},
	{"panic", "panic"},
	{"heart racing", "panic"},
	{"stressed", "stress"},
	{"overwhelmed", "stress"},
	{"under pressure", "stress"},
	{"social anxiety", "social-anxiety"},
	{"being judged", "social-anxiety"},
	{"embarrassed", "social-anxiety"},
	{"public speaking", "social-anxiety"},
}

var approachTaxonomy = []string{
	"cbt",
	"cognitive behavioral",
	"dbt",
	"dialectical",
	"emdr",
	"psychodynamic",
	"psychoanalytic",
	"mindfulness",
	"acceptance and commitment",
	"act therapy",
	"humanistic",
	"person-centered",
	"somatic",
	"exposure therapy",
	"family therapy",
	"couples therapy",
	"group therapy",
	"art therapy",
}

// Sentiment lexicons. Crisis terms dominate: any hit pins the sentiment
// score to its ceiling regardless of other polarity counts.
var crisisTerms = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"hurt myself",
	"self-harm",
	"end my life",
	"no reason to live",
}

var negativeTerms = []string{
	"hopeless",
	"worthless",
	"miserable",
	"terrible",
	"awful",
	"exhausted",
	"scared",
	"afraid",
	"lonely",
	"crying",
	"can't cope",
	"overwhelmed",
	"numb",
	"hurting",
}

var positiveTerms = []string{
	"hopeful",
	"better",
	"improving",
	"grateful",
	"happy",
	"calm",
	"confident",
	"optimistic",
	"excited",
}
