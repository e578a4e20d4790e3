package lexicon

var defaultAcronyms = []string{
	"IT", "HR", "ERP", "API", "SaaS", "PaaS", "IaaS", "KPI", "CRM", "SCM",
	"CEO", "CFO", "CIO", "COO", "CTO", "AI", "ML", "QA", "QC", "SQL",
	"CSS", "HTML", "XML", "JSON", "HTTP", "URL", "UI", "UX", "PC", "CAD",
	"CAM", "CNC", "GPS", "EHR", "EMR", "HVAC", "OSHA", "EPA", "FDA", "GAAP",
	"IFRS", "ROI", "SLA", "SOP", "SKU", "B2B", "B2C", "IP", "VPN", "LAN",
	"WAN", "DNS", "SEO", "CMS", "BI", "ETL", "POS", "RFID", "EDI", "GDPR",
	"HIPAA", "PCI", "ISO", "ESG", "PLC", "SCADA", "IoT", "OCR", "NLP", "PDF",
	"CPA", "EMT", "CPR", "ICU", "TV", "LED", "USB",
}

var defaultStopwords = []string{
	"a", "an", "the", "or", "and", "of", "in", "on", "at", "by", "s",
}

var defaultPrepositions = []string{
	"to", "for", "with", "in", "on", "by", "from", "using", "into", "through",
	"via", "within", "without", "during", "under", "over", "about", "across",
	"between", "against", "among", "per", "upon", "regarding", "including",
	"at", "toward", "towards", "throughout",
}

var defaultConjunctions = []string{"and", "or", "nor"}

// Infinitives that signal an unstripped verb when they lead an identifier.
// Words that are as often nouns as verbs (plan, report, schedule, process)
// are deliberately absent.
var defaultCommonVerbs = []string{
	"manage", "develop", "create", "review", "ensure", "provide", "maintain",
	"prepare", "coordinate", "direct", "perform", "conduct", "establish",
	"analyze", "determine", "identify", "implement", "evaluate", "assist",
	"oversee", "supervise", "inspect", "operate", "install", "repair",
	"assess", "recommend", "collect", "compile", "communicate", "negotiate",
	"organize", "train", "verify", "obtain", "apply", "confer", "advise",
	"explain", "instruct", "interpret", "calculate", "estimate", "purchase",
	"approve", "monitor", "use", "make", "keep", "give", "take", "set",
}

var defaultSuffixes = map[string][]string{
	"roles": {
		"Supervisors", "Managers", "Workers", "Operators", "Technicians",
		"Technologists", "Specialists", "Assistants", "Clerks", "Inspectors",
		"Engineers", "Teachers", "Mechanics", "Installers", "Repairers",
		"Helpers", "Attendants", "Analysts", "Officers", "Representatives",
		"Aides", "Tenders", "Laborers", "Agents", "Coordinators", "Directors",
	},
	"industries": {
		"Merchant Wholesalers", "Manufacturing", "Services", "Construction",
		"Production", "Extraction", "Mining", "Farming", "Stores", "Retailers",
		"Wholesalers", "Dealers", "Carriers", "Transportation", "Activities",
		"Agencies", "Facilities", "Contractors", "Publishers", "Industries",
		"Leasing", "Rental",
	},
	"products": {
		"Unprocessed", "Processed", "Products", "Equipment", "Supplies",
		"Materials", "Parts", "Accessories", "Devices", "Instruments",
		"Components", "Machinery", "Tools",
	},
	"services": {
		"Services", "Support", "Consulting", "Maintenance", "Management",
		"Repair", "Installation", "Training",
	},
	"processes": {
		"Processes", "Activities", "Operations", "Programs", "Plans",
		"Policies", "Procedures", "Strategies", "Requirements", "Capabilities",
	},
	"objects": {
		"Activities", "Operations", "Programs", "Procedures", "Policies",
		"Records", "Reports", "Plans", "Systems", "Equipment", "Materials",
		"Services", "Projects", "Budgets",
	},
}
