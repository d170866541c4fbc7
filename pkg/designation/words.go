package designation

var adjectives = []string{
	"ancient", "ardent", "brave", "bright", "calm", "candid", "careful",
	"cautious", "clever", "crisp", "curious", "daring", "diligent", "discreet",
	"eager", "earnest", "elusive", "fearless", "fierce", "focused", "frank",
	"gallant", "gentle", "gritty", "guarded", "hidden", "honest", "humble",
	"intrepid", "keen", "loyal", "lucid", "mindful", "modest", "nimble",
	"noble", "obscure", "patient", "pensive", "placid", "plain", "private",
	"prudent", "quiet", "reserved", "resolute", "restless", "sage", "serene",
	"shrewd", "silent", "sincere", "sly", "sober", "solemn", "stark",
	"steadfast", "stoic", "subtle", "swift", "tacit", "tenacious", "thorough",
	"thoughtful", "tranquil", "unseen", "valiant", "veiled", "vigilant",
	"wary", "watchful", "wise", "withdrawn", "worthy", "zealous",
}

var nouns = []string{
	"advocate", "analyst", "archivist", "arbiter", "attache", "auditor",
	"author", "banker", "broker", "builder", "cartographer", "chemist",
	"clerk", "colleague", "consul", "courier", "curator", "customer",
	"delegate", "deputy", "diplomat", "drafter", "editor", "emissary",
	"engineer", "envoy", "examiner", "farmer", "forester", "geologist",
	"herald", "historian", "inspector", "jurist", "keeper", "lawyer",
	"lecturer", "librarian", "linguist", "mariner", "mechanic", "messenger",
	"miller", "navigator", "neighbor", "nominee", "notary", "observer",
	"operator", "patron", "pilot", "printer", "professor", "publisher",
	"quartermaster", "registrar", "reporter", "scholar", "scribe", "sentry",
	"shepherd", "steward", "surveyor", "tailor", "teacher", "tenant",
	"translator", "traveler", "treasurer", "trustee", "warden", "witness",
}
