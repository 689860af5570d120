package registry

import (
	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/model"
)

// Seed tables. These are edited in source and shipped with the binary;
// slugs are routing keys and must never change once a page is indexed.
// Retired entries get a redirect, not a deletion.

var cityTable = []model.City{
	{
		Slug:  "austin",
		Name:  "Austin",
		State: "TX",
		Lat:   30.2672,
		Lng:   -97.7431,
		Neighborhoods: []string{
			"Downtown Austin", "South Congress", "East Austin", "The Domain",
			"Round Rock", "Cedar Park", "Pflugerville",
		},
	},
	{
		Slug:  "dallas",
		Name:  "Dallas",
		State: "TX",
		Lat:   32.7767,
		Lng:   -96.797,
		Neighborhoods: []string{
			"Uptown", "Deep Ellum", "Oak Lawn", "Preston Hollow",
			"Plano", "Frisco", "Irving",
		},
	},
	{
		Slug:  "houston",
		Name:  "Houston",
		State: "TX",
		Lat:   29.7604,
		Lng:   -95.3698,
		Neighborhoods: []string{
			"The Heights", "Montrose", "Midtown", "River Oaks",
			"Katy", "Sugar Land", "The Woodlands",
		},
	},
	{
		Slug:  "san-antonio",
		Name:  "San Antonio",
		State: "TX",
		Lat:   29.4241,
		Lng:   -98.4936,
		Neighborhoods: []string{
			"Alamo Heights", "Stone Oak", "The Pearl", "Southtown",
			"New Braunfels", "Boerne",
		},
	},
	{
		Slug:  "phoenix",
		Name:  "Phoenix",
		State: "AZ",
		Lat:   33.4484,
		Lng:   -112.074,
		Neighborhoods: []string{
			"Scottsdale", "Tempe", "Chandler", "Gilbert",
			"Mesa", "Glendale", "Arcadia",
		},
	},
	{
		Slug:  "denver",
		Name:  "Denver",
		State: "CO",
		Lat:   39.7392,
		Lng:   -104.9903,
		Neighborhoods: []string{
			"LoDo", "RiNo", "Capitol Hill", "Cherry Creek",
			"Aurora", "Lakewood", "Boulder",
		},
	},
}

var industryTable = []model.Industry{
	{
		Key:         "legal",
		Name:        "Law Firms",
		Description: "Intake, conflict checks, and document drafting automated so attorneys bill hours instead of chasing paperwork.",
		Icon:        model.IconScale,
		Published:   true,
	},
	{
		Key:         "healthcare",
		Name:        "Healthcare Practices",
		Description: "Patient scheduling, reminders, and insurance verification handled around the clock without adding front-desk staff.",
		Icon:        model.IconStetho,
		Published:   true,
	},
	{
		Key:         "real-estate",
		Name:        "Real Estate",
		Description: "Lead qualification and showing coordination that responds to every inquiry in seconds, day or night.",
		Icon:        model.IconHouse,
		Published:   true,
	},
	{
		Key:         "construction",
		Name:        "Construction & Trades",
		Description: "Estimates, dispatch, and follow-ups automated for contractors who would rather be on the job site.",
		Icon:        model.IconHardHat,
		Published:   true,
	},
	{
		Key:         "home-services",
		Name:        "Home Services",
		Description: "Booking, routing, and review collection for HVAC, plumbing, and electrical companies.",
		Icon:        model.IconWrench,
		Published:   true,
	},
	{
		Key:       "ecommerce",
		Name:      "E-Commerce",
		Icon:      model.IconCart,
		Published: false,
	},
	{
		Key:       "hospitality",
		Name:      "Hospitality",
		Icon:      model.IconBed,
		Published: false,
	},
	{
		Key:       "professional-services",
		Name:      "Professional Services",
		Icon:      model.IconBriefcase,
		Published: false,
	},
}

var solutionTable = []model.Solution{
	{
		Slug:        "ai-voice-agents",
		Name:        "AI Voice Agents",
		ShortName:   "Voice Agents",
		Tagline:     "Never miss another call",
		Description: "AI receptionists that answer every call in under two rings, book appointments, and route urgent matters to a human.",
		LongDescription: "Missed calls are missed revenue. Our AI voice agents pick up instantly, around the clock, in natural " +
			"conversational English. They qualify the caller, answer the questions your staff answers fifty times a week, book " +
			"directly into your calendar, and hand off to a person the moment a conversation needs one. Every call is transcribed " +
			"and summarized so nothing falls through the cracks.",
		Benefits: []string{
			"24/7 answering with zero hold time",
			"Direct calendar booking during the call",
			"Full transcripts and summaries of every conversation",
			"Warm handoff to staff for complex or urgent calls",
		},
		Features: []string{
			"Custom voice and script tuned to your brand",
			"CRM and calendar integrations",
			"Spam and robocall screening",
			"Bilingual English/Spanish support",
		},
		UseCases: []model.UseCase{
			{Title: "After-hours intake", Description: "Capture new client calls that used to hit voicemail and vanish.", Industry: "legal"},
			{Title: "Appointment scheduling", Description: "Patients book, reschedule, and confirm without tying up the front desk.", Industry: "healthcare"},
			{Title: "Emergency dispatch", Description: "Route no-heat and burst-pipe calls to the on-call tech immediately.", Industry: "home-services"},
		},
		Industries: []string{"legal", "healthcare", "home-services", "real-estate"},
		Stats: []model.Stat{
			{Label: "Calls answered", Display: "100%", Value: 100, Unit: "percent"},
			{Label: "Average answer time", Display: "<2 rings", Value: 2, Unit: "rings"},
			{Label: "Booked appointments lift", Display: "+37%", Value: 37, Unit: "percent"},
		},
		ROI: model.ROI{
			TimeToValue: "Live in 2 weeks",
			Efficiency:  "Reclaims 20+ staff hours per week",
			CostSavings: "A fraction of a full-time receptionist",
		},
		FAQs: []model.FAQ{
			{Question: "Will callers know they are talking to an AI?", Answer: "The agent introduces itself honestly and most callers simply appreciate the instant answer. Anyone who asks for a person is transferred immediately."},
			{Question: "What happens if the AI cannot answer a question?", Answer: "It takes a message, texts you the transcript, and offers the caller a callback window, so no conversation dead-ends."},
			{Question: "Does it work with my existing phone number?", Answer: "Yes. We forward your current line, so nothing changes for your customers."},
		},
		Pricing: model.Pricing{Model: "monthly subscription", StartingPrice: "$495/mo", Enterprise: false},
	},
	{
		Slug:        "workflow-automation",
		Name:        "Workflow Automation",
		ShortName:   "Automation",
		Tagline:     "Your back office, on autopilot",
		Description: "Connect the tools you already use and eliminate the copy-paste work between them.",
		LongDescription: "Most small businesses run on a patchwork of CRM, spreadsheets, email, and invoicing tools held together by " +
			"manual re-entry. We map those handoffs and replace them with automations: a signed proposal creates the project, " +
			"notifies the team, schedules the kickoff, and drafts the invoice, with no one touching a keyboard.",
		Benefits: []string{
			"Hours of manual data entry eliminated weekly",
			"Fewer dropped handoffs between tools and people",
			"Every process documented as it is automated",
		},
		Features: []string{
			"Works with 5,000+ business applications",
			"Human-approval steps where judgment is required",
			"Error alerting with automatic retries",
			"Monthly optimization reviews",
		},
		UseCases: []model.UseCase{
			{Title: "Lead-to-project pipeline", Description: "New signed deals spin up projects, folders, and kickoff tasks automatically.", Industry: "construction"},
			{Title: "Document assembly", Description: "Engagement letters and standard motions drafted from intake data.", Industry: "legal"},
			{Title: "Listing syndication", Description: "One listing entry fans out to every portal and your social channels.", Industry: "real-estate"},
		},
		Industries: []string{"legal", "construction", "real-estate", "healthcare"},
		Stats: []model.Stat{
			{Label: "Hours saved per week", Display: "15-30", Value: 22.5, Unit: "hours"},
			{Label: "Data-entry errors", Display: "-90%", Value: 90, Unit: "percent"},
			{Label: "Payback period", Display: "under 90 days", Value: 90, Unit: "days"},
		},
		ROI: model.ROI{
			TimeToValue: "First automation live in days",
			Efficiency:  "15-30 hours back per week",
			CostSavings: "Typically replaces one part-time admin role",
		},
		FAQs: []model.FAQ{
			{Question: "Do I need to switch software?", Answer: "No. We build on top of the tools you already use and only recommend changes when a tool is genuinely the bottleneck."},
			{Question: "What if an automation breaks?", Answer: "Every workflow has error alerting and a documented manual fallback. We monitor and fix issues as part of the subscription."},
		},
		Pricing: model.Pricing{Model: "project + retainer", StartingPrice: "$2,500", Enterprise: true},
	},
	{
		Slug:        "ai-chat-agents",
		Name:        "AI Chat Agents",
		ShortName:   "Chat Agents",
		Tagline:     "Answers before they bounce",
		Description: "Website and SMS chat agents trained on your business that qualify leads and book meetings while you sleep.",
		LongDescription: "Visitors who cannot find an answer in thirty seconds leave. Our chat agents are trained on your services, " +
			"pricing, and policies, so they answer specifically, not generically. They qualify the visitor, capture contact details, " +
			"and push booked meetings straight onto your calendar, then follow up by SMS with anyone who drops off mid-conversation.",
		Benefits: []string{
			"Instant answers on web and SMS",
			"Lead capture and qualification built in",
			"Escalation to live staff inside business hours",
		},
		Features: []string{
			"Trained on your own content and policies",
			"Calendar booking in-chat",
			"Conversation analytics and transcripts",
			"Multilingual out of the box",
		},
		UseCases: []model.UseCase{
			{Title: "Pre-visit triage", Description: "Collect symptoms and insurance details before the first call.", Industry: "healthcare"},
			{Title: "Buyer qualification", Description: "Separate browsers from pre-approved buyers before an agent spends an hour.", Industry: "real-estate"},
		},
		Industries: []string{"healthcare", "real-estate", "home-services"},
		Stats: []model.Stat{
			{Label: "Response time", Display: "instant", Value: 0, Unit: "seconds"},
			{Label: "Lead capture lift", Display: "+52%", Value: 52, Unit: "percent"},
		},
		ROI: model.ROI{
			TimeToValue: "Live in under a week",
			Efficiency:  "Deflects 60% of repetitive inquiries",
			CostSavings: "Less than an hour of staff time per day, automated",
		},
		FAQs: []model.FAQ{
			{Question: "How is this different from a generic chatbot widget?", Answer: "Generic widgets follow scripts; this agent is trained on your actual services and pricing and answers like a staff member would."},
			{Question: "Can it hand off to a human?", Answer: "Yes. During business hours it escalates live; after hours it books a callback and sends you the full transcript."},
		},
		Pricing: model.Pricing{Model: "monthly subscription", StartingPrice: "$295/mo", Enterprise: false},
	},
	{
		Slug:        "ai-seo-content",
		Name:        "AI SEO & Content Systems",
		ShortName:   "SEO Systems",
		Tagline:     "Found by search engines and answer engines",
		Description: "Content pipelines that keep you ranking in traditional search and cited by AI answer engines.",
		LongDescription: "Search is splitting: classic rankings on one side, AI answer engines on the other. We build the content " +
			"system that serves both: structured service and location pages, schema markup that machines can actually parse, and a " +
			"publishing cadence your team can sustain because most of the assembly is automated.",
		Benefits: []string{
			"Structured data on every page, maintained automatically",
			"Local landing pages for every market you serve",
			"Content briefs and drafts generated from your expertise",
		},
		Features: []string{
			"Schema.org markup and AEO optimization",
			"Programmatic local page generation",
			"Editorial review workflow, nothing auto-publishes",
			"Monthly ranking and citation reports",
		},
		UseCases: []model.UseCase{
			{Title: "Local market expansion", Description: "Launch a full set of city pages when you enter a new metro.", Industry: "home-services"},
			{Title: "Practice-area authority", Description: "A sustained publishing pipeline for each practice area.", Industry: "legal"},
		},
		Industries: []string{"legal", "home-services", "construction"},
		Stats: []model.Stat{
			{Label: "Organic traffic growth", Display: "+250%", Value: 250, Unit: "percent"},
			{Label: "Pages maintained", Display: "100s", Value: 100, Unit: "pages"},
		},
		ROI: model.ROI{
			TimeToValue: "First rankings movement in 60-90 days",
			Efficiency:  "A full content team's output without the headcount",
			CostSavings: "Replaces agency retainers twice the price",
		},
		FAQs: []model.FAQ{
			{Question: "Is AI-generated content penalized by search engines?", Answer: "Low-effort generated content is. Ours is built from your real expertise with editorial review on everything, which is what search engines actually reward."},
		},
		Pricing: model.Pricing{Model: "monthly retainer", StartingPrice: "$1,500/mo", Enterprise: true},
	},
}

var postTable = []model.BlogPost{
	{
		Slug:        "missed-calls-cost-small-businesses",
		Title:       "What Missed Calls Actually Cost a Small Business",
		Description: "We pulled call data from 40 service businesses. The average company misses 27% of inbound calls, and most of those callers never call back.",
		Date:        "2025-06-12",
		Author:      "Maya Okafor",
		ReadingTime: "7 min read",
		Hero:        "/static/img/blog/missed-calls.jpg",
		Tags:        []string{"voice-agents", "revenue"},
		Body: templ.Raw("<p>Across the 40 service businesses we audited last quarter, just over a quarter of all inbound " +
			"calls went unanswered. Industry callback studies put the never-call-back rate above 60%.</p>" +
			"<p>Multiply that out against an average job value and the voicemail box starts to look like the most " +
			"expensive piece of equipment in the building.</p>"),
	},
	{
		Slug:        "automation-first-90-days",
		Title:       "Your First 90 Days of Workflow Automation",
		Description: "A realistic rollout plan: which processes to automate first, which to leave alone, and how to measure whether any of it worked.",
		Date:        "2025-07-03",
		Author:      "Daniel Reyes",
		ReadingTime: "9 min read",
		Hero:        "/static/img/blog/first-90-days.jpg",
		Tags:        []string{"automation", "operations"},
		Body: templ.Raw("<p>The fastest way to sour a team on automation is to start with the hardest process in the " +
			"building. Start instead with the boring, high-volume handoffs everyone already resents doing by hand.</p>"),
	},
	{
		Slug:        "aeo-vs-seo-local-businesses",
		Title:       "AEO vs SEO: What Local Businesses Need to Know",
		Description: "AI answer engines are already deciding which local businesses get recommended. Here is how citation works and how to structure your site for it.",
		Date:        "2025-07-21",
		Author:      "Maya Okafor",
		ReadingTime: "6 min read",
		Hero:        "/static/img/blog/aeo-vs-seo.jpg",
		Tags:        []string{"seo", "aeo"},
		Body: templ.Raw("<p>When someone asks an AI assistant for a plumber recommendation, the assistant has to cite " +
			"something. Structured data, consistent NAP details, and genuinely specific service pages are what make " +
			"your business citable.</p>"),
	},
	{
		Slug:        "roi-math-ai-receptionist",
		Title:       "The ROI Math Behind an AI Receptionist",
		Description: "A worked example: call volume, close rates, and average job value, and the break-even point where an AI voice agent pays for itself.",
		Date:        "2025-08-14",
		Author:      "Daniel Reyes",
		ReadingTime: "5 min read",
		Hero:        "/static/img/blog/roi-math.jpg",
		Tags:        []string{"voice-agents", "roi"},
		Body: templ.Raw("<p>Take a shop with 300 inbound calls a month, a 25% miss rate, a 30% close rate on answered " +
			"calls, and a $450 average ticket. Recovering even half the missed calls is worth about $5,000 a month.</p>"),
	},
	{
		Slug:        "five-signs-ready-for-automation",
		Title:       "Five Signs Your Business Is Ready for Automation",
		Description: "Not every business should automate yet. These five operational signals tell you whether automation will compound your growth or just your chaos.",
		Date:        "2025-08-28",
		Author:      "Priya Natarajan",
		ReadingTime: "4 min read",
		Tags:        []string{"automation", "strategy"},
		Body: templ.Raw("<p>Automating a broken process gets you a faster broken process. Before wiring anything " +
			"together, check that the manual version at least works when people follow it.</p>"),
	},
}
