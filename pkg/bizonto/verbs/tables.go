package verbs

// irregularPast maps base forms to past tense. It also carries regular verbs
// whose spelling defeats the CVC doubling rules (open, edit, offer...).
var irregularPast = map[string]string{
	"be": "was", "go": "went", "do": "did", "have": "had", "make": "made",
	"take": "took", "give": "gave", "get": "got", "run": "ran", "see": "saw",
	"come": "came", "know": "knew", "think": "thought", "find": "found",
	"tell": "told", "become": "became", "leave": "left", "feel": "felt",
	"bring": "brought", "begin": "began", "keep": "kept", "hold": "held",
	"write": "wrote", "stand": "stood", "hear": "heard", "let": "let",
	"mean": "meant", "set": "set", "meet": "met", "pay": "paid",
	"sit": "sat", "speak": "spoke", "lead": "led", "read": "read",
	"grow": "grew", "lose": "lost", "fall": "fell", "send": "sent",
	"build": "built", "understand": "understood", "draw": "drew",
	"break": "broke", "spend": "spent", "cut": "cut", "rise": "rose",
	"drive": "drove", "buy": "bought", "wear": "wore", "choose": "chose",
	"seek": "sought", "throw": "threw", "catch": "caught", "deal": "dealt",
	"win": "won", "sell": "sold", "teach": "taught", "put": "put",
	"shut": "shut", "forecast": "forecast", "oversee": "oversaw",
	"undertake": "undertook", "withdraw": "withdrew", "feed": "fed",
	"fly": "flew", "shoot": "shot", "split": "split", "spread": "spread",

	"open": "opened", "edit": "edited", "visit": "visited", "limit": "limited",
	"audit": "audited", "offer": "offered", "enter": "entered", "order": "ordered",
	"alter": "altered", "cater": "catered", "debit": "debited", "vomit": "vomited",
	"credit": "credited", "budget": "budgeted", "market": "marketed",
	"target": "targeted", "pilot": "piloted", "deposit": "deposited",
	"commit": "committed", "submit": "submitted", "transmit": "transmitted",
	"permit": "permitted", "control": "controlled", "patrol": "patrolled",
	"excel": "excelled", "prefer": "preferred", "transfer": "transferred",
	"equip": "equipped",
}

// irregularGerunds maps gerunds to base forms where the pattern rules would
// guess wrong, including "-ing" words that are not gerunds at all.
var irregularGerunds = map[string]string{
	"being": "be", "getting": "get", "having": "have", "making": "make",
	"taking": "take", "giving": "give", "coming": "come", "writing": "write",
	"running": "run", "setting": "set", "putting": "put", "cutting": "cut",
	"dying": "die", "lying": "lie", "tying": "tie", "seeing": "see",
	"going": "go", "doing": "do", "meeting": "meet", "visiting": "visit",
	"editing": "edit", "budgeting": "budget", "marketing": "market",
	"auditing": "audit", "limiting": "limit", "targeting": "target",
	"crediting": "credit", "exhibiting": "exhibit", "depositing": "deposit",
	"focusing": "focus", "analyzing": "analyze", "scheduling": "schedule",
	"handling": "handle", "assembling": "assemble", "compiling": "compile",
	"filing": "file", "piloting": "pilot", "forecasting": "forecast",
	"hiring": "hire", "acquiring": "acquire", "requiring": "require",
	"ensuring": "ensure", "preparing": "prepare", "comparing": "compare",
	"storing": "store", "scoring": "score", "measuring": "measure",
	"exploring": "explore", "sharing": "share", "procuring": "procure",
	"securing": "secure", "configuring": "configure", "structuring": "structure",
	"manufacturing": "manufacture", "capturing": "capture",
	"providing": "provide", "guiding": "guide", "deciding": "decide",
	"including": "include", "coding": "code", "trading": "trade",
	"grading": "grade", "upgrading": "upgrade", "concluding": "conclude",
	"consuming": "consume", "defining": "define", "combining": "combine",
	"determining": "determine", "examining": "examine", "shaping": "shape",
	"issuing": "issue", "continuing": "continue", "pursuing": "pursue",
	"valuing": "value", "solving": "solve", "involving": "involve",
	"resolving": "resolve", "serving": "serve", "preserving": "preserve",
	"observing": "observe", "licensing": "license", "dispensing": "dispense",
	"balancing": "balance", "financing": "finance", "sourcing": "source",
	"enforcing": "enforce", "announcing": "announce", "advancing": "advance",
	"changing": "change", "arranging": "arrange", "challenging": "challenge",
	"exchanging": "exchange", "charging": "charge", "merging": "merge",
	"offering": "offer", "entering": "enter", "ordering": "order",
	"altering": "alter", "opening": "open", "committing": "commit",
	"controlling": "control", "transferring": "transfer", "equipping": "equip",
	"submitting": "submit", "preferring": "prefer",
	"treating": "treat", "heating": "heat", "eating": "eat", "seating": "seat",
	"repeating": "repeat", "adding": "add", "interpreting": "interpret",
	"soliciting": "solicit", "prescribing": "prescribe", "describing": "describe",
	"transcribing": "transcribe", "subscribing": "subscribe",
	"bring": "bring", "string": "string", "spring": "spring", "thing": "thing",
	"during": "during", "ceiling": "ceiling", "morning": "morning",
	"evening": "evening",
}

// defaultVerbs is the fallback vocabulary when no verb table is supplied.
// It leans on the imperative verbs that open task and activity statements.
var defaultVerbs = []string{
	"accept", "access", "acquire", "adjust", "administer", "advise", "allocate",
	"analyze", "answer", "apply", "approve", "arrange", "assemble", "assess",
	"assign", "assist", "attend", "audit", "authorize", "build", "calculate",
	"calibrate", "check", "clean", "collaborate", "collect", "communicate",
	"compile", "complete", "conduct", "confer", "configure", "confirm",
	"consult", "contact", "control", "coordinate", "create", "define",
	"deliver", "design", "determine", "develop", "diagnose", "direct",
	"distribute", "document", "draft", "edit", "educate", "enforce", "ensure",
	"establish", "estimate", "evaluate", "examine", "execute", "explain",
	"facilitate", "file", "fund", "gather", "generate", "guide", "handle",
	"hire", "identify", "implement", "improve", "inform", "inspect", "install",
	"instruct", "interpret", "interview", "investigate", "lead", "maintain",
	"manage", "measure", "mentor", "modify", "monitor", "negotiate", "notify",
	"observe", "obtain", "operate", "order", "organize", "oversee", "participate",
	"perform", "plan", "prepare", "prescribe", "present", "process", "procure",
	"produce", "program", "promote", "provide", "purchase", "read", "recommend",
	"record", "recruit", "repair", "replace", "report", "represent", "research",
	"resolve", "respond", "review", "schedule", "select", "sell", "serve",
	"set", "solicit", "study", "supervise", "supply", "support", "teach",
	"test", "track", "train", "transport", "treat", "troubleshoot", "update",
	"upgrade", "verify", "write",
}
