package legal

// defaultTopics is the built-in reference table. Keywords are compared
// case-insensitively; earlier topics win ties.
var defaultTopics = []Topic{
	{
		ID:    "fundamental-rights",
		Title: "Fundamental Rights",
		Keywords: []string{
			"fundamental rights",
			"basic rights",
			"मौलिक अधिकार",
			"right to equality",
			"right to freedom",
			"article 14",
			"article 19",
			"article 21",
		},
		Response: `**Fundamental Rights under the Indian Constitution (Part III)**

The Constitution of India guarantees six Fundamental Rights to every citizen:

1. **Right to Equality (Articles 14-18):** Equality before law, prohibition of discrimination on grounds of religion, race, caste, sex, or place of birth. Abolition of untouchability and titles.

2. **Right to Freedom (Articles 19-22):** Freedom of speech and expression, assembly, association, movement, residence, and profession. Protection against arrest and detention.

3. **Right against Exploitation (Articles 23-24):** Prohibition of human trafficking, forced labour, and child labour in hazardous industries.

4. **Right to Freedom of Religion (Articles 25-28):** Freedom of conscience and free profession, practice, and propagation of religion.

5. **Cultural and Educational Rights (Articles 29-30):** Protection of interests of minorities and their right to establish educational institutions.

6. **Right to Constitutional Remedies (Article 32):** Right to move the Supreme Court for enforcement of Fundamental Rights through writs (Habeas Corpus, Mandamus, Prohibition, Certiorari, Quo Warranto).`,
		Citations: []string{
			"Article 14 - Right to Equality",
			"Article 19 - Right to Freedom",
			"Article 21 - Right to Life and Personal Liberty",
			"Article 32 - Right to Constitutional Remedies",
			"Part III - Constitution of India",
		},
	},
	{
		ID:    "fir",
		Title: "First Information Report",
		Keywords: []string{
			"fir",
			"police complaint",
			"file complaint",
			"पुलिस शिकायत",
			"एफआईआर",
			"first information report",
			"lodge fir",
			"police report",
		},
		Response: `**How to File an FIR (First Information Report) in India**

**What is an FIR?**
An FIR is a written document prepared by the police when they receive information about the commission of a cognizable offence. It is the first step in the criminal justice process.

**Steps to File an FIR:**

1. **Visit the nearest police station** — Any person can file an FIR, whether or not they are the victim.

2. **Provide information** — Narrate the incident to the Station House Officer (SHO). Include details like date, time, place, and description of the accused if known.

3. **Get it in writing** — The police officer must write down the information. You can file the FIR in any language.

4. **Read and sign** — Read the FIR carefully before signing it. You are entitled to a free copy of the FIR.

5. **Zero FIR** — Under Section 173 of Bharatiya Nagarik Suraksha Sanhita (BNSS), you can file an FIR at ANY police station regardless of jurisdiction.

**If Police Refuses to File FIR:**
- Send written complaint to the Superintendent of Police (SP)
- File a complaint before the Judicial Magistrate under Section 175(3) BNSS
- File an online FIR on the state police website

**Important:** Filing a false FIR is punishable under Section 211 of Bharatiya Nyaya Sanhita (BNS).`,
		Citations: []string{
			"Section 173 BNSS - Information in Cognizable Cases",
			"Section 175(3) BNSS - Magistrate Power",
			"Section 211 BNS - False Charge of Offence",
			"Lalita Kumari v. Govt. of U.P. (2014) - Mandatory FIR Registration",
		},
	},
	{
		ID:    "divorce",
		Title: "Divorce",
		Keywords: []string{
			"divorce",
			"तलाक",
			"marriage dissolution",
			"divorce process",
			"mutual divorce",
			"contested divorce",
			"विवाह विच्छेद",
		},
		Response: `**Divorce Laws in India**

**Types of Divorce:**

1. **Mutual Consent Divorce (Section 13-B, Hindu Marriage Act):**
   - Both spouses agree to separate
   - Must be living separately for at least 1 year
   - Two petitions filed with 6-month gap (cooling period)
   - Supreme Court can waive the 6-month cooling period in exceptional cases

2. **Contested Divorce (Section 13, Hindu Marriage Act):**
   Grounds include:
   - Adultery
   - Cruelty (physical or mental)
   - Desertion for 2+ years
   - Conversion to another religion
   - Unsoundness of mind
   - Incurable disease

**For Other Religions:**
- **Muslim Law:** Talaq, Khula, Mubarat, judicial divorce
- **Christian:** Indian Divorce Act, 1869
- **Special Marriage Act:** Applies to inter-faith marriages

**Maintenance & Alimony:**
- Wife can claim maintenance under Section 125 CrPC/Section 144 BNSS
- Maintenance amount depends on husband's income and wife's needs
- Children's custody decided based on child's welfare

**Process:** File petition in Family Court → Service of notice → Response → Mediation → Trial → Decree`,
		Citations: []string{
			"Section 13 - Hindu Marriage Act, 1955",
			"Section 13-B - Mutual Consent Divorce",
			"Section 125 CrPC / Section 144 BNSS - Maintenance",
			"Special Marriage Act, 1954",
			"Indian Divorce Act, 1869",
		},
	},
	{
		ID:    "consumer-rights",
		Title: "Consumer Rights",
		Keywords: []string{
			"consumer rights",
			"consumer complaint",
			"उपभोक्ता",
			"consumer protection",
			"product defect",
			"defective product",
			"consumer court",
			"consumer forum",
		},
		Response: `**Consumer Rights & Consumer Protection Act, 2019**

**Six Consumer Rights:**
1. **Right to Safety** — Protection against hazardous goods
2. **Right to Information** — Complete details about product quality, quantity, price
3. **Right to Choose** — Access to variety of goods at competitive prices
4. **Right to be Heard** — Consumer interests to receive due consideration
5. **Right to Seek Redressal** — Fair settlement of genuine grievances
6. **Right to Consumer Education** — Knowledge about consumer rights

**How to File a Complaint:**

1. **District Consumer Forum:** For claims up to ₹1 crore
2. **State Consumer Commission:** For claims ₹1 crore to ₹10 crore
3. **National Consumer Commission:** For claims above ₹10 crore

**Filing Process:**
- Can file online at consumerhelpline.gov.in or edaakhil.nic.in
- Complaint must be filed within 2 years of cause of action
- No lawyer required (but recommended for complex cases)
- Nominal fees (₹100-₹5000 depending on claim)

**E-Commerce:** The Act covers online purchases. Complaints can be filed against e-commerce platforms.

**Helpline:** National Consumer Helpline — 1800-11-4000 (Toll-free)`,
		Citations: []string{
			"Consumer Protection Act, 2019",
			"Section 34 - District Consumer Forum",
			"Section 47 - State Commission",
			"Section 58 - National Commission",
			"E-Commerce Rules, 2020",
		},
	},
	{
		ID:    "tenancy",
		Title: "Tenant Rights",
		Keywords: []string{
			"tenant",
			"rent",
			"landlord",
			"eviction",
			"किराया",
			"किरायेदार",
			"मकान मालिक",
			"rental agreement",
			"tenant rights",
		},
		Response: `**Tenant Rights in India**

**Key Tenant Protections:**

1. **Right to Written Agreement:** Always insist on a registered rent agreement. Oral agreements are hard to enforce.

2. **Security Deposit:** Model Tenancy Act 2021 caps security deposit at 2 months' rent for residential property.

3. **Eviction Protection:** A landlord cannot evict without proper legal notice and valid grounds:
   - Non-payment of rent (after 2 months' notice)
   - Subletting without permission
   - Misuse of property
   - Landlord's genuine personal need
   - Property in dangerous condition

4. **Essential Services:** Landlord cannot cut off water, electricity, or other essential services to force eviction.

5. **Rent Increase:** Rent can only be increased as per the agreement terms. Arbitrary hikes are not allowed.

6. **Privacy:** Landlord must give reasonable notice (24 hours recommended) before visiting the property.

**If Illegally Evicted:**
- File complaint at local police station
- Approach Rent Controller/Civil Court
- File complaint under Section 441 BNS (Criminal Trespass)

**Rent Authority:** Under Model Tenancy Act, disputes are resolved by Rent Authority within 60 days.`,
		Citations: []string{
			"Model Tenancy Act, 2021",
			"Transfer of Property Act, 1882 - Section 106",
			"Section 441 BNS - Criminal Trespass",
			"Rent Control Acts (State-specific)",
			"Registration Act, 1908",
		},
	},
	{
		ID:    "criminal-law",
		Title: "Criminal Law",
		Keywords: []string{
			"ipc",
			"criminal",
			"bns",
			"bharatiya nyaya",
			"punishment",
			"offence",
			"crime",
			"अपराध",
			"दंड",
			"murder",
			"theft",
			"assault",
		},
		Response: `**Criminal Law in India — Bharatiya Nyaya Sanhita (BNS), 2023**

The BNS replaced the Indian Penal Code (IPC) from July 1, 2024.

**Key Offences & Punishments:**

1. **Murder (Section 101 BNS):** Death or life imprisonment + fine
2. **Attempt to Murder (Section 109 BNS):** Up to 10 years + fine
3. **Kidnapping (Section 137 BNS):** Up to 7 years + fine
4. **Theft (Section 303 BNS):** Up to 3 years, or fine, or both
5. **Robbery (Section 309 BNS):** Up to 10 years + fine
6. **Cheating (Section 318 BNS):** Up to 3 years + fine
7. **Criminal Intimidation (Section 351 BNS):** Up to 2 years + fine
8. **Assault (Section 115 BNS):** Up to 3 months + fine up to ₹1000

**Important Provisions:**
- **Section 69 BNS:** Sexual intercourse by deceitful means — up to 10 years
- **Section 79 BNS:** Word, gesture, or act to insult modesty of woman
- **Section 111 BNS:** Organized crime — addressed for the first time
- **Section 113 BNS:** Terrorism — comprehensive definition added

**Bail Provisions:** Under BNSS, bail is a right for offences punishable up to 3 years. For serious offences, the court has discretion.`,
		Citations: []string{
			"Bharatiya Nyaya Sanhita (BNS), 2023",
			"Section 101 BNS - Murder",
			"Section 303 BNS - Theft",
			"Section 318 BNS - Cheating",
			"Bharatiya Nagarik Suraksha Sanhita (BNSS), 2023",
		},
	},
	{
		ID:    "property",
		Title: "Property Law",
		Keywords: []string{
			"property",
			"land",
			"succession",
			"inheritance",
			"will",
			"संपत्ति",
			"जमीन",
			"उत्तराधिकार",
			"वसीयत",
			"property dispute",
			"land dispute",
		},
		Response: `**Property Law in India**

**Types of Property Transfer:**
1. **Sale:** Transfer of ownership for a price (requires registration for immovable property above ₹100)
2. **Gift:** Voluntary transfer without consideration (must be registered)
3. **Will:** Transfer after death of owner
4. **Inheritance:** Transfer by succession law

**Key Laws:**

**Hindu Succession Act, 1956 (amended 2005):**
- Daughters have equal coparcenary rights as sons in ancestral property
- A Hindu can make a will for self-acquired property
- Ancestral property is divided equally among all legal heirs

**Registration:**
- All property transactions above ₹100 must be registered under the Registration Act, 1908
- Stamp duty varies by state (typically 5-8% of property value)

**Property Disputes:**
- Civil suit in appropriate court
- Revenue courts for land-related disputes
- RERA (Real Estate Regulatory Authority) for builder-buyer disputes

**Important:** Always verify property title, encumbrance certificate, and land records before purchasing. Check for any pending litigation on the property.`,
		Citations: []string{
			"Transfer of Property Act, 1882",
			"Hindu Succession Act, 1956 (Amendment 2005)",
			"Registration Act, 1908",
			"Indian Succession Act, 1925",
			"RERA Act, 2016",
		},
	},
	{
		ID:    "cyber-crime",
		Title: "Cyber Crime",
		Keywords: []string{
			"cyber crime",
			"online fraud",
			"hacking",
			"साइबर अपराध",
			"ऑनलाइन धोखाधड़ी",
			"identity theft",
			"cyber bullying",
			"data privacy",
			"it act",
		},
		Response: `**Cyber Crime Laws in India**

**Information Technology Act, 2000 (IT Act):**

1. **Hacking (Section 66):** Up to 3 years imprisonment + fine up to ₹5 lakh
2. **Identity Theft (Section 66C):** Up to 3 years + fine up to ₹1 lakh
3. **Cyber Stalking (Section 354D IPC / BNS):** Up to 3 years
4. **Publishing Obscene Material (Section 67):** Up to 5 years + fine up to ₹10 lakh
5. **Data Breach by Company (Section 43A):** Compensation to affected persons

**How to Report Cyber Crime:**
1. **National Cyber Crime Portal:** cybercrime.gov.in
2. **Helpline:** 1930 (Cyber Crime Helpline)
3. **Local Police Station:** File FIR with Cyber Cell
4. **Email:** Report to cert-in@cert-in.org.in

**Digital Personal Data Protection Act, 2023:**
- Governs collection and processing of personal data
- Consent-based data processing
- Penalties up to ₹250 crore for data breaches
- Data fiduciary obligations

**Online Fraud Prevention Tips:**
- Never share OTP, PIN, or passwords
- Verify UPI requests before approving
- Report suspicious transactions within 3 days to bank for full refund eligibility`,
		Citations: []string{
			"Information Technology Act, 2000",
			"Section 66 IT Act - Hacking",
			"Section 66C IT Act - Identity Theft",
			"Digital Personal Data Protection Act, 2023",
			"RBI Circular on Digital Fraud",
		},
	},
	{
		ID:    "labour",
		Title: "Labour Law",
		Keywords: []string{
			"labour",
			"labor",
			"employment",
			"salary",
			"wages",
			"termination",
			"वेतन",
			"नौकरी",
			"रोजगार",
			"minimum wage",
			"working hours",
			"pf",
			"provident fund",
			"gratuity",
		},
		Response: `**Labour Laws in India**

**Four Labour Codes (replacing 29 old laws):**

1. **Code on Wages, 2019:**
   - Minimum wage applicable to ALL employees (organized & unorganized)
   - Equal pay for equal work regardless of gender
   - Wages must be paid by 7th of every month

2. **Industrial Relations Code, 2020:**
   - Retrenchment: 15 days' average pay per year of service
   - Prior government permission needed for layoff/retrenchment in firms with 300+ workers
   - Strikes require 14 days' advance notice

3. **Social Security Code, 2020:**
   - **PF (Provident Fund):** 12% each by employer and employee
   - **Gratuity:** 15 days' salary per year after 5 years of service
   - **ESI:** For salary up to ₹21,000/month

4. **Occupational Safety, Health & Working Conditions Code, 2020:**
   - Maximum 8 hours/day working time
   - Overtime pay at 2x normal rate
   - Annual leave: 1 day per 20 days worked
   - No female worker to work beyond 7 PM (with exceptions and consent)

**Wrongful Termination:** Approach Labour Court or Industrial Tribunal within 3 years.`,
		Citations: []string{
			"Code on Wages, 2019",
			"Industrial Relations Code, 2020",
			"Social Security Code, 2020",
			"Occupational Safety Code, 2020",
			"Payment of Gratuity Act, 1972",
		},
	},
	{
		ID:    "rti",
		Title: "Right to Information",
		Keywords: []string{
			"rti",
			"right to information",
			"सूचना का अधिकार",
			"information act",
			"government information",
			"public information",
		},
		Response: `**Right to Information (RTI) Act, 2005**

**What is RTI?**
Every citizen has the right to request information from any public authority (government body). The authority must respond within 30 days.

**How to File RTI:**

1. **Online:** Visit rtionline.gov.in (for Central Government)
2. **Offline:** Write application on plain paper addressed to the PIO (Public Information Officer)

**Application Requirements:**
- Name and address of applicant
- Details of information required
- Fee of ₹10 (by cash/DD/IPO/Court Fee Stamp)
- BPL applicants are exempt from fees

**Timeline:**
- Normal: 30 days from receipt
- Life/Liberty related: 48 hours
- Third party information: 40 days

**If Denied or No Response:**
- **First Appeal:** To senior officer within 30 days
- **Second Appeal:** To Information Commission within 90 days

**Penalties:** If officer fails to provide information without reasonable cause, penalty of ₹250 per day, up to ₹25,000.

**Exemptions (Section 8):** National security, personal privacy, cabinet papers, trade secrets, etc.

**Important:** RTI cannot be filed for information from private bodies (unless they receive government funding).`,
		Citations: []string{
			"Right to Information Act, 2005",
			"Section 6 - Application for Information",
			"Section 7 - Disposal of Request",
			"Section 8 - Exemptions",
			"Section 20 - Penalties",
		},
	},
	{
		ID:    "women-protection",
		Title: "Women's Protection",
		Keywords: []string{
			"women",
			"domestic violence",
			"dowry",
			"harassment",
			"sexual harassment",
			"महिला",
			"घरेलू हिंसा",
			"दहेज",
			"उत्पीड़न",
			"posh",
			"workplace harassment",
		},
		Response: `**Laws Protecting Women in India**

1. **Protection of Women from Domestic Violence Act, 2005:**
   - Covers physical, mental, sexual, verbal, and economic abuse
   - Wife, live-in partner, or any female family member can file complaint
   - Relief: Protection orders, residence orders, monetary relief, custody orders
   - Complaint to Protection Officer or Magistrate

2. **Dowry Prohibition Act, 1961:**
   - Giving/taking dowry is punishable with 5 years imprisonment + ₹15,000 fine or dowry amount
   - Section 304-B IPC/Section 80 BNS: Dowry death — 7 years to life imprisonment

3. **Sexual Harassment at Workplace (POSH Act, 2013):**
   - Every organization with 10+ employees must have Internal Complaints Committee (ICC)
   - Complaint within 3 months of incident
   - Employer liable for non-compliance

4. **Section 354 BNS:** Assault or criminal force to woman with intent to outrage modesty — up to 5 years
5. **Section 63 BNS (Rape):** 10 years to life imprisonment

**Helplines:**
- Women Helpline: 181
- National Commission for Women: 7827-170-170
- Police Emergency: 112`,
		Citations: []string{
			"Protection of Women from Domestic Violence Act, 2005",
			"Dowry Prohibition Act, 1961",
			"POSH Act, 2013",
			"Section 63 BNS - Rape",
			"Section 354 BNS - Assault on Woman",
		},
	},
}
