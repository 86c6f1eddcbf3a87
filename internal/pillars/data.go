package pillars

// defaultPillars is the standard site content. Display order matters.
func defaultPillars() []Pillar {
	return []Pillar{
		{
			Slug:             "building",
			Title:            "Building",
			Tagline:          "Designing the Future of Healthcare – One Facility at a Time",
			ShortDescription: "Comprehensive healthcare infrastructure development and design.",
			Badge:            "Core Foundation",
			Intro:            "We partner with promoters and clinicians to plan, design, and deliver compliant, scalable and future‑ready healthcare facilities. Our approach balances evidence‑based design, operational efficiency, and capital discipline.",
			Highlights: []string{
				"Future‑ready, scalable facilities",
				"Compliance‑first design",
				"Integrated digital health",
			},
			Stats: []Stat{
				{Label: "Avg. Build Time", Value: "12–18 mo"},
				{Label: "Compliance Score", Value: "95%+"},
				{Label: "CapEx Efficiency", Value: "+12%"},
			},
			FAQs: []FAQ{
				{Question: "What inputs do you need to start?", Answer: "A brief on scope, site details (if available), preferred specialties, and budget range are ideal to begin."},
				{Question: "Do you support turnkey delivery?", Answer: "Yes. We can engage end‑to‑end from feasibility to commissioning, with milestone‑based delivery."},
			},
			QuickPeek: []QuickPeek{
				{Icon: IconMap, Title: "Master Planning Ready", Desc: "Site fit, zoning, adjacencies, and growth scenarios modeled from day one."},
				{Icon: IconWrench, Title: "Integrated MEP + BioMed", Desc: "Seamless engineering with medical equipment planning and room templates."},
				{Icon: IconCPU, Title: "Digital Health Infra", Desc: "IT backbone, EMR readiness, IoT & monitoring designed into the facility."},
				{Icon: IconShield, Title: "Compliance Pathway", Desc: "Local codes and accreditation mapped to milestones for smooth approvals."},
				{Icon: IconLeaf, Title: "Sustainable Design", Desc: "Eco-friendly solutions and energy-efficient systems for green healthcare facilities."},
			},
			Sections: []Section{
				{
					Heading: "Our Approach",
					Body:    "We combine technology with evidence-based design to create functional and healing-oriented facilities. From concept to commissioning, we ensure compliance, scalability, and patient-first environments.",
					Bullets: []string{
						"Master Planning & Concept Design",
						"Architectural Design & Engineering",
						"MEP & Biomedical Integration",
						"Digital Health Infrastructure",
					},
				},
				{
					Heading: "Typical Phases",
					Body:    "Projects advance through planning, detailed design, approvals, and commissioning, tailored to your scope and accreditation needs.",
					Bullets: []string{
						"Feasibility & Planning",
						"Architecture & Design",
						"Licensing & Approvals",
						"Commissioning & Operations",
					},
				},
			},
		},
		{
			Slug:             "caring",
			Title:            "Caring",
			Tagline:          "Putting Patients, People, and Communities at the Heart of Healthcare",
			ShortDescription: "Patient-centric systems and environments that heal and inspire.",
			Badge:            "Compassion",
			Intro:            "Caring is our philosophy made practical — environments, processes, and teams designed to preserve dignity and deliver superior outcomes. We infuse patient experience into workflows, spaces, and service design.",
			Highlights: []string{
				"Wayfinding & clarity",
				"Privacy & dignity",
				"Healing materials & light",
				"Patient dignity & comfort",
				"Global safety standards",
				"Humanized care systems",
			},
			Stats: []Stat{
				{Label: "HCAHPS Uplift", Value: "+15%"},
				{Label: "Avg. LOS Impact", Value: "−0.5 day"},
				{Label: "Safety Events", Value: "−20%"},
				{Label: "Wayfinding Errors", Value: "−30%"},
				{Label: "Noise Levels", Value: "−25%"},
				{Label: "PX Score", Value: "+12%"},
			},
			FAQs: []FAQ{
				{Question: "How do you measure patient experience?", Answer: "We implement standardized PX surveys, staff feedback loops, and operational KPIs tied to service design."},
				{Question: "Can we retrofit existing facilities?", Answer: "Yes, we specialize in phased upgrades that minimize disruption to ongoing services."},
				{Question: "Can we phase upgrades?", Answer: "Yes, we implement phased design upgrades without disrupting critical services."},
				{Question: "Do you audit existing layouts?", Answer: "We perform PX and safety audits to identify high‑impact design changes quickly."},
			},
			QuickPeek: []QuickPeek{
				{Icon: IconMap, Title: "Wayfinding & Clarity", Desc: "Intuitive routes, signage, and arrival experiences to reduce stress."},
				{Icon: IconShield, Title: "Privacy & Safety", Desc: "Dignity-first layouts and protocols aligned to global safety standards."},
				{Icon: IconSun, Title: "Healing Environments", Desc: "Natural light, acoustics, and materials tuned for calm and recovery."},
				{Icon: IconUsers, Title: "Family-Centered Care", Desc: "Inclusive spaces that support families and caregivers across journeys."},
				{Icon: IconHeart, Title: "Patient Advocacy", Desc: "Dedicated support to ensure patient voices are heard and respected."},
			},
			Sections: []Section{
				{
					Heading: "Patient-Centered Care",
					Body:    "Care isn’t a department — it’s the entire experience. We align clinical goals with human needs to create calm, inclusive environments that protect dignity, reduce anxiety, and enable teams to deliver consistently excellent care.",
					Bullets: []string{
						"Dignity-first layouts and private zones",
						"Safety-by-design aligned to global standards",
						"Humanized care pathways across OP/IP/ER",
						"Family & caregiver-inclusive spaces",
					},
				},
				{
					Heading: "Design Tenets",
					Body:    "Our patient‑centric design system translates research into real‑world decisions that make hospitals intuitive, quieter, and more reassuring for everyone.",
					Bullets: []string{
						"Intuitive wayfinding & legible signage maps",
						"Barrier‑free circulation with family lounges",
						"Acoustic zoning, privacy screens, soft finishes",
						"Daylight access, greenery, and warm materials",
						"Clear arrival, triage, and discharge touchpoints",
						"Inclusive design for ages, abilities, and cultures",
					},
				},
				{
					Heading: "Phases",
					Body:    "Change is successful when everyone owns it. We co‑create with clinical, admin, and facilities teams to deliver improvements that stick.",
					Bullets: []string{
						"PX & Safety Audit (shadowing, heatmaps, issues)",
						"Concept & Mockups (flows, layouts, prototypes)",
						"Stakeholder Review (nursing, clinicians, admin)",
						"Implementation (phased works with minimal downtime)",
						"Measure & Refine (PX, safety, throughput KPIs)",
					},
				},
			},
		},
		{
			Slug:             "education",
			Title:            "Education & Training",
			Tagline:          "Empowering Healthcare Professionals Through Continuous Learning",
			ShortDescription: "World-class education and upskilling pathways for clinicians.",
			Badge:            "Growth",
			Intro:            "We enable clinicians to pursue globally recognized qualifications and modern competencies. From foundational guidance to exam strategy and hands‑on skills, we help build careers that elevate care quality.",
			Highlights: []string{
				"Globally recognized pathways",
				"Exam‑oriented coaching",
				"Clinical skill development",
			},
			Stats: []Stat{
				{Label: "Pass Rate Boost", Value: "+18%"},
				{Label: "Programs", Value: "8+"},
				{Label: "Learner NPS", Value: "9.2/10"},
			},
			FAQs: []FAQ{
				{Question: "Do you provide mentorship?", Answer: "Yes, our mentors guide candidates on curricula, practice patterns, and exam strategy."},
				{Question: "Are there onsite workshops?", Answer: "We organize focused bootcamps and simulation‑based workshops as needed."},
			},
			QuickPeek: []QuickPeek{
				{Icon: IconBook, Title: "Global Pathways", Desc: "Guidance for MRCP, MRCS, MRCOG, MRCEM, MRCPsych, FRCR programs."},
				{Icon: IconCheck, Title: "Exam Strategy", Desc: "Mentorship, mock exams, and feedback loops tailored to your specialty."},
				{Icon: IconActivity, Title: "Skills Workshops", Desc: "Simulation-based practice and focused bootcamps where applicable."},
				{Icon: IconStethoscope, Title: "Career Tracks", Desc: "Structured tracks mapped to competencies and real-world practice."},
				{Icon: IconUsers, Title: "Faculty Development", Desc: "Specialized training for educators to enhance teaching methodologies."},
				{Icon: IconAward, Title: "Certification Support", Desc: "Comprehensive assistance with documentation and accreditation processes."},
			},
			Sections: []Section{
				{
					Heading: "Professional Pathways",
					Body:    "Programs like MRCP, MRCS, MRCOG, MRCEM, MRCPsych, and FRCR equip professionals with globally recognized competencies.",
					Bullets: []string{
						"Comprehensive learning tracks",
						"Exam-oriented guidance",
						"Clinical skill development",
						"Career mentorship",
					},
				},
			},
		},
	}
}
