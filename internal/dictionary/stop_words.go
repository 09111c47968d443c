package dictionary

// stopWords are job-posting filler words that never count as terms on their own.
var stopWords = map[string]struct{}{
	"we": {}, "are": {}, "looking": {}, "for": {}, "with": {}, "years": {}, "of": {},
	"experience": {}, "key": {}, "requirements": {}, "include": {}, "proficiency": {}, "in": {},
	"strong": {}, "knowledge": {}, "and": {}, "platforms": {}, "familiarity": {}, "excellent": {},
	"problem": {}, "solving": {}, "skills": {}, "ability": {}, "to": {}, "work": {},
	"collaborative": {}, "environment": {}, "is": {}, "a": {}, "the": {}, "an": {}, "on": {},
	"at": {}, "by": {}, "from": {}, "up": {}, "about": {}, "into": {}, "over": {}, "after": {},
	"plus": {}, "preferred": {}, "required": {}, "must": {}, "have": {}, "stack": {}, "full": {},
	"engineer": {}, "developer": {}, "software": {}, "team": {}, "using": {}, "role": {},
	"position": {}, "who": {}, "our": {}, "will": {}, "be": {}, "highly": {}, "motivated": {},
	"seeking": {}, "passionate": {}, "successful": {}, "candidate": {}, "ideal": {}, "apply": {},
	"join": {}, "us": {}, "help": {}, "build": {}, "create": {}, "maintain": {}, "support": {},
	"technical": {}, "professional": {}, "design": {}, "develop": {}, "implement": {}, "manage": {},
	"lead": {}, "communication": {}, "written": {}, "verbal": {}, "degree": {}, "computer": {},
	"science": {}, "field": {}, "related": {}, "equivalent": {}, "relevant": {},
}
