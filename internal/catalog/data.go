package catalog

// questions is the fixed assessment catalog: 4 dimensions x 3 questions,
// ids "1.1" through "4.3". Option A is always the strongest answer (4 points)
// and D the weakest (1 point).
var questions = []Question{
	// Governance
	{
		ID:        "1.1",
		Dimension: DimensionGovernance,
		Prompt: Text{
			EN: "Does your family have a Family Constitution or written charter that outlines your values, rules, and operating principles?",
			TH: "G1. ครอบครัวของท่านมีธรรมนูญครอบครัวหรือข้อตกลงเป็นลายลักษณ์อักษรที่ระบุค่านิยม กฎเกณฑ์ และหลักการดำเนินชีวิตหรือไม่?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Yes, comprehensive and actively used", "ก. มีและใช้งานจริงอย่างครบถ้วน"}, 4},
			OptionB: {Text{"Yes, but needs updating or not consistently used", "ข. มีแต่ต้องปรับปรุงหรือไม่ได้ใช้อย่างสม่ำเสมอ"}, 3},
			OptionC: {Text{"Some written agreements but no comprehensive constitution", "ค. มีข้อตกลงบางเรื่องแต่ไม่ครอบคลุมทั้งหมด"}, 2},
			OptionD: {Text{"No Family Constitution or written charter", "ง. ไม่มีธรรมนูญครอบครัวหรือข้อตกลงเป็นลายลักษณ์อักษร"}, 1},
		},
	},
	{
		ID:        "1.2",
		Dimension: DimensionGovernance,
		Prompt: Text{
			EN: "How effective are your family's processes for making important financial and wealth decisions?",
			TH: "G2. กระบวนการตัดสินใจของครอบครัวเกี่ยวกับเรื่องเงินและทรัพย์สินที่สำคัญมีประสิทธิภาพแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Very effective with clear structures and authority levels", "ก. มีประสิทธิภาพมาก มีโครงสร้างและการแบ่งหน้าที่ที่ชัดเจน"}, 4},
			OptionB: {Text{"Mostly effective but could be more streamlined", "ข. ค่อนข้างมีประสิทธิภาพ แต่อาจปรับให้คล่องตัวขึ้นได้"}, 3},
			OptionC: {Text{"Somewhat effective but often slow", "ค. พอใช้ได้ แต่มักใช้เวลานาน"}, 2},
			OptionD: {Text{"Not effective - unclear, slow, or causes conflicts", "ง. ไม่มีประสิทธิภาพ - ไม่ชัดเจน ช้า หรือเกิดความขัดแย้ง"}, 1},
		},
	},
	{
		ID:        "1.3",
		Dimension: DimensionGovernance,
		Prompt: Text{
			EN: "How well does your family handle conflicts and disagreements about wealth and family matters?",
			TH: "G3. ครอบครัวของท่านจัดการกับความขัดแย้งและความเห็นต่างเกี่ยวกับเรื่องเงินและครอบครัวได้ดีแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Very well with established processes for quick resolution", "ก. ดีมาก มีวิธีการที่ตกลงกันไว้สำหรับแก้ปัญหาอย่างรวดเร็ว"}, 4},
			OptionB: {Text{"Well through discussion, though emotions sometimes involved", "ข. ดี สามารถคุยกันได้ แม้ว่าบางครั้งจะมีอารมณ์เข้ามาเกี่ยวข้อง"}, 3},
			OptionC: {Text{"Somewhat defined but not consistently discussed across the family", "ค. พอชัดเจน แต่ไม่ได้พูดคุยกันสม่ำเสมอ"}, 2},
			OptionD: {Text{"Not well - conflicts escalate or remain unresolved", "ง. ไม่ดี - ปัญหาใหญ่ขึ้นหรือไม่ได้รับการแก้ไข"}, 1},
		},
	},

	// Legacy
	{
		ID:        "2.1",
		Dimension: DimensionLegacy,
		Prompt: Text{
			EN: "How well defined and shared are your family's core values, purpose, and identity?",
			TH: "L1. ค่านิยมหลัก จุดมุ่งหมาย และเอกลักษณ์ของครอบครัวชัดเจนและเข้าใจตรงกันแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Very well defined - all members understand and embrace our family values and mission", "ก. ชัดเจนมาก - ทุกคนในครอบครัวเข้าใจและยึดถือค่านิยมและเป้าหมายของครอบครัว"}, 4},
			OptionB: {Text{"Well defined - most members understand our family purpose and identity", "ข. ค่อนข้างชัดเจน - คนส่วนใหญ่เข้าใจจุดมุ่งหมายและเอกลักษณ์ของครอบครัว"}, 3},
			OptionC: {Text{"Somewhat defined but not consistently discussed across the family", "ค. พอชัดเจน แต่ไม่ได้พูดคุยกันสม่ำเสมอ"}, 2},
			OptionD: {Text{"Not well defined - family values and purpose unclear", "ง. ไม่ค่อยชัดเจน - ค่านิยมและจุดมุ่งหมายของครอบครัวยังไม่แน่ชัด"}, 1},
		},
	},
	{
		ID:        "2.2",
		Dimension: DimensionLegacy,
		Prompt: Text{
			EN: "How comprehensive is your family's wealth transfer and estate planning?",
			TH: "L2. การวางแผนการส่งต่อทรัพย์สินและมรดกของครอบครัวครอบคลุมแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Very comprehensive with current wills, trusts, and succession plans", "ก. ครอบคลุมมาก มีพินัยกรรม กองทุน และแผนการสืบทอดที่เป็นปัจจุบัน"}, 4},
			OptionB: {Text{"Comprehensive with good documents and minor gaps", "ข. ค่อนข้างครอบคลุม มีเอกสารที่ดีแต่อาจมีรายละเอียดที่ต้องเพิ่มเติม"}, 3},
			OptionC: {Text{"Basic planning with essential documents but lacks strategy", "ค. วางแผนพื้นฐาน มีเอกสารจำเป็นแต่ยังขาดกลยุทธ์ที่ชัดเจน"}, 2},
			OptionD: {Text{"Inadequate planning without proper documentation", "ง. วางแผนไม่เพียงพอ ไม่มีเอกสารที่เหมาะสม"}, 1},
		},
	},
	{
		ID:        "2.3",
		Dimension: DimensionLegacy,
		Prompt: Text{
			EN: "How aligned is your family's community engagement and philanthropy with your family's core values and mission?",
			TH: "L3. การทำบุญทำทานและการมีส่วนร่วมกับสังคมของครอบครัวสอดคล้องกับค่านิยมและเป้าหมายของครอบครัวแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Highly aligned - philanthropy is central to our family's mission, reinforcing our shared values and strengthening family bonds across generations.", "ก. สอดคล้องมาก - การทำบุญเป็นหัวใจหลักของครอบครัว ช่วยเสริมสร้างค่านิยมร่วมและความสัมพันธ์ที่แน่นแฟ้นข้ามรุ่น"}, 4},
			OptionB: {Text{"Well aligned - actively engage in activities reflecting family values", "ข. ค่อนข้างสอดคล้อง - มีส่วนร่วมในกิจกรรมที่สะท้อนค่านิยมครอบครัวอย่างแข็งขัน"}, 3},
			OptionC: {Text{"Somewhat aligned - occasional giving but not systematic", "ค. พอสอดคล้อง - ช่วยเหลือเป็นครั้งคราวแต่ไม่เป็นระบบ"}, 2},
			OptionD: {Text{"Not aligned - giving not current focus or misaligned with values", "ง. ไม่ค่อยสอดคล้อง - การให้ไม่ใช่ความสำคัญหลักหรือไม่ตรงกับค่านิยม"}, 1},
		},
	},

	// Relationships
	{
		ID:        "3.1",
		Dimension: DimensionRelationships,
		Prompt: Text{
			EN: "How would you describe communication within your family about money and wealth matters?",
			TH: "R1. ท่านจะอธิบายการสื่อสารในครอบครัวเกี่ยวกับเรื่องเงินและทรัพย์สินอย่างไร?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Open, honest, and constructive - comfortable discussing money", "ก. เปิดเผย ตรงไปตรงมา และสร้างสรรค์ - สบายใจพูดคุยเรื่องเงิน"}, 4},
			OptionB: {Text{"Generally good but some topics remain sensitive", "ข. โดยรวมดี แต่บางเรื่องยังคงเป็นเรื่องละเอียดอ่อน"}, 3},
			OptionC: {Text{"Mixed - varies by topic and people involved", "ค. ขึ้นอยู่กับเรื่องและคนที่เกี่ยวข้อง"}, 2},
			OptionD: {Text{"Poor - money conversations avoided or cause tension", "ง. ไม่ดี - หลีกเลี่ยงการพูดคุยเรื่องเงินหรือทำให้เกิดความตึงเครียด"}, 1},
		},
	},
	{
		ID:        "3.2",
		Dimension: DimensionRelationships,
		Prompt: Text{
			EN: "How well is the next generation being prepared for wealth responsibility?",
			TH: "R2. ลูกหลานได้รับการเตรียมความพร้อมสำหรับความรับผิดชอบด้านทรัพย์สินดีแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Excellent preparation through formal education, mentorship, and progressively responsible roles, including a track record of success outside the family enterprise.", "ก. เตรียมความพร้อมได้ยอดเยี่ยม ผ่านการศึกษาอย่างเป็นระบบ การแนะนำ และการให้ความรับผิดชอบเพิ่มขึ้นทีละน้อย รวมถึงประสบการณ์ความสำเร็จนอกครอบครัว"}, 4},
			OptionB: {Text{"Good preparation with regular discussions and educational opportunities", "ข. เตรียมความพร้อมได้ดี มีการพูดคุยสม่ำเสมอและโอกาสการเรียนรู้"}, 3},
			OptionC: {Text{"Basic preparation but could be more systematic", "ค. เตรียมความพร้อมระดับพื้นฐาน แต่น่าจะเป็นระบบมากกว่านี้"}, 2},
			OptionD: {Text{"Poor preparation - limited next generation education", "ง. เตรียมความพร้อมไม่ดี - การให้ความรู้ลูกหลานยังจำกัด"}, 1},
		},
	},
	{
		ID:        "3.3",
		Dimension: DimensionRelationships,
		Prompt: Text{
			EN: "How unified is your family around important goals and priorities?",
			TH: "R3. ครอบครัวของท่านมีความเป็นน้ำหนึ่งใจเดียวกันเกี่ยวกับเป้าหมายและสิ่งที่สำคัญแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Very unified - strong alignment on family goals and priorities", "ก. เป็นน้ำหนึ่งใจเดียวมาก - ทุกคนมีเป้าหมายและความสำคัญที่ตรงกัน"}, 4},
			OptionB: {Text{"Mostly unified with minor differences in approaches", "ข. ส่วนใหญ่เป็นน้ำหนึ่งใจเดียว มีความแตกต่างเล็กน้อยในวิธีการ"}, 3},
			OptionC: {Text{"Somewhat unified but significant differences on important issues", "ค. พอเป็นน้ำหนึ่งใจเดียว แต่มีความเห็นต่างในเรื่องสำคัญบ้าง"}, 2},
			OptionD: {Text{"Not unified - major disagreements about family direction", "ง. ไม่ค่อยเป็นน้ำหนึ่งใจเดียวกัน - มีความเห็นต่างใหญ่เกี่ยวกับทิศทางครอบครัว"}, 1},
		},
	},

	// Strategy
	{
		ID:        "4.1",
		Dimension: DimensionStrategy,
		Prompt: Text{
			EN: "Does your family have a systematic approach to long-term planning, such as a designated 'Wealth Strategist' or leadership team responsible for your overall wealth strategy?",
			TH: "S1. ครอบครัวของท่านมีแนวทางเป็นระบบในการวางแผนระยะยาว เช่น มี 'ที่ปรึกษากลยุทธ์ความมั่งคั่ง' หรือทีมที่รับผิดชอบกลยุทธ์ทรัพย์สินโดยรวมหรือไม่?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Yes, we have a formally recognized Wealth Strategist/team driving a comprehensive long-term plan.", "ก. มี เรามีที่ปรึกษากลยุทธ์ความมั่งคั่ง/ทีมที่ได้รับการยอมรับอย่างเป็นทางการที่วางแผนระยะยาวอย่างครอบคลุม"}, 4},
			OptionB: {Text{"Yes, we have good long-term planning, though leadership responsibilities could be clearer.", "ข. มี เรามีการวางแผนระยะยาวที่ดี แม้ว่าความรับผิดชอบในการเป็นผู้นำอาจจะชัดเจนขึ้นได้"}, 3},
			OptionC: {Text{"We do some informal planning, but it's not systematic or clearly led.", "ค. เราวางแผนกันไม่เป็นทางการบ้าง แต่ไม่เป็นระบบหรือมีผู้รับผิดชอบที่ชัดเจน"}, 2},
			OptionD: {Text{"No, we lack a systematic approach to long-term planning and a designated leader.", "ง. ไม่มี เราขาดแนวทางเป็นระบบในการวางแผนระยะยาวและคนที่รับผิดชอบ"}, 1},
		},
	},
	{
		ID:        "4.2",
		Dimension: DimensionStrategy,
		Prompt: Text{
			EN: "How clearly has your family defined its primary long-term financial objective, which guides your wealth strategy?",
			TH: "S2. ครอบครัวของท่านได้กำหนดเป้าหมายทางการเงินระยะยาวหลักที่เป็นแนวทางกลยุทธ์ทรัพย์สินชัดเจนแค่ไหน?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Very clearly defined as Growth-Oriented (growing real per-capita wealth for future generations).", "ก. กำหนดชัดเจนมาก เป็นแบบมุ่งเน้นการเติบโต (เพิ่มทรัพย์สินต่อคนจริงๆ สำหรับลูกหลาน)"}, 4},
			OptionB: {Text{"Clearly defined as Conservation-Oriented (preserving purchasing power over the long term).", "ข. กำหนดชัดเจน เป็นแบบมุ่งเน้นการอนุรักษ์ (รักษาอำนาจซื้อในระยะยาว)"}, 3},
			OptionC: {Text{"Generally understood as Distribution-Oriented (supporting the current generation's lifestyle).", "ค. เข้าใจกันโดยทั่วไป เป็นแบบมุ่งเน้นการใช้จ่าย (รองรับวิถีชีวิตของคนรุ่นปัจจุบัน)"}, 2},
			OptionD: {Text{"Our family has not formally defined a collective long-term financial objective.", "ง. ครอบครัวเรายังไม่ได้กำหนดเป้าหมายทางการเงินระยะยาวร่วมกันอย่างเป็นทางการ"}, 1},
		},
	},
	{
		ID:        "4.3",
		Dimension: DimensionStrategy,
		Prompt: Text{
			EN: "How well does your family approach overall risk management and diversification of its assets?",
			TH: "S3. ครอบครัวของคุณมีแนวทางในการบริหารความเสี่ยงโดยรวมและการกระจายความเสี่ยงของสินทรัพย์ได้ดีเพียงใด?",
		},
		Options: map[OptionKey]Option{
			OptionA: {Text{"Excellent: There is a clear risk management policy and assets are professionally diversified", "ก. ยอดเยี่ยม: มีนโยบายการบริหารความเสี่ยงที่ชัดเจน และมีการกระจายความเสี่ยงของสินทรัพย์อย่างมืออาชีพ"}, 4},
			OptionB: {Text{"Good: There is a good understanding of risk management and good diversification", "ข. ดี: มีความเข้าใจที่ดีเกี่ยวกับการบริหารความเสี่ยง และมีการกระจายความเสี่ยงที่ดี"}, 3},
			OptionC: {Text{"Moderate: We have some diversification but lack a systematic approach to risk management", "ค. พอใช้: เรามีการกระจายความเสี่ยงบ้าง แต่ขาดแนวทางการบริหารความเสี่ยงที่เป็นระบบ"}, 2},
			OptionD: {Text{"Needs work: There is very limited diversification and risk management", "ง. ต้องพัฒนา: มีการกระจายความเสี่ยงและการบริหารความเสี่ยงที่จำกัดมาก"}, 1},
		},
	},
}
