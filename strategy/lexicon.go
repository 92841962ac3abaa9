package strategy

// Lexicon holds the curated Korean word groups the search modes draw
// candidates from. The tables are tuned for Korean semantic-similarity play;
// callers may substitute their own lexicon for other corpora.
type Lexicon struct {
	// Categories are eight disjoint semantic buckets used by wide
	// exploration to cover distinct meaning regions.
	Categories map[string][]string

	// HighImpactWords historically produce strong anchor guesses and get a
	// large seed-scoring bonus.
	HighImpactWords []string

	// EffectiveWords are reliable openers with a moderate bonus.
	EffectiveWords []string

	// GeneralWords round out the seed pool with broad coverage.
	GeneralWords []string

	// Expansions groups words that broaden a concept within one meaning
	// region.
	Expansions map[string][]string

	// Associations groups linguistically associated words.
	Associations map[string][]string

	// ContextualMaps groups words that co-occur in a shared context.
	ContextualMaps map[string][]string

	// SemanticFields are the larger fields used by focused search to find
	// a region shared by several high-similarity guesses.
	SemanticFields map[string][]string

	// Suffixes are common Korean endings used to generate morphological
	// variants in precision search.
	Suffixes []string
}

// DefaultLexicon returns the built-in Korean lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Categories: map[string][]string{
			"추상개념": {"생각", "마음", "정신", "의식", "감정", "느낌"},
			"물리객체": {"사물", "물건", "물체", "존재", "실체", "형태"},
			"관계연결": {"관계", "연결", "결합", "만남", "소통", "교류"},
			"변화과정": {"변화", "과정", "발전", "성장", "진행", "흐름"},
			"공간위치": {"공간", "장소", "위치", "지역", "영역", "범위"},
			"시간순서": {"시간", "순간", "시기", "때", "기간", "순서"},
			"행동활동": {"행동", "활동", "움직임", "작업", "노력", "실행"},
			"상태조건": {"상태", "조건", "상황", "환경", "분위기", "기분"},
		},
		HighImpactWords: []string{
			"사례", "실패", "기원", "방법", "기업", "사업", "공부", "기술", "방안", "사랑",
		},
		EffectiveWords: []string{
			"사람", "순서", "공간", "지역", "영역", "과정", "절차", "수단",
		},
		GeneralWords: []string{
			"시간", "자연", "음식", "감정", "장소", "행동", "생각", "문제", "세상",
			"사회", "교육", "정치", "경제", "문화", "과학", "예술", "건강",
		},
		Expansions: map[string][]string{
			"사람": {"인간", "개인", "타인", "누군가", "사람들", "인물", "인사"},
			"시간": {"때", "순간", "시기", "시절", "기간", "시점", "시대"},
			"장소": {"곳", "지역", "위치", "공간", "영역", "범위", "영토"},
			"방법": {"수단", "방식", "기법", "절차", "과정", "단계"},
			"상태": {"조건", "상황", "환경", "분위기", "느낌", "기분"},
			"행동": {"활동", "움직임", "작업", "행위", "실행", "진행"},
		},
		Associations: map[string][]string{
			"문제": {"과제", "쟁점", "이슈", "고민", "걱정", "난제"},
			"해결": {"처리", "해답", "방안", "대안", "극복", "완료"},
			"중요": {"핵심", "주요", "필수", "기본", "근본", "본질"},
			"변화": {"전환", "개선", "발전", "진보", "성장", "혁신"},
			"관계": {"연결", "결합", "소통", "교류", "상호작용", "협력"},
		},
		ContextualMaps: map[string][]string{
			"사회": {"정치", "경제", "문화", "교육", "복지", "제도"},
			"국민": {"시민", "주민", "인민", "국가", "정부", "공동체"},
			"학습": {"교육", "공부", "연구", "지식", "이해", "습득"},
			"지식": {"정보", "학문", "경험", "기술", "능력", "실력"},
			"감정": {"마음", "기분", "느낌", "정서", "심리", "의식"},
			"행복": {"기쁨", "만족", "즐거움", "웃음", "평화", "사랑"},
		},
		SemanticFields: map[string][]string{
			"정치사회": {"정치", "사회", "국가", "정부", "국민", "시민", "공동체", "사회적", "정책", "제도"},
			"교육학습": {"교육", "학습", "공부", "지식", "학문", "연구", "이해", "습득", "경험"},
			"감정심리": {"감정", "마음", "기분", "느낌", "정서", "심리", "사랑", "행복", "슬픔"},
			"시공간":  {"시간", "공간", "장소", "위치", "때", "순간", "지역", "영역", "범위"},
			"행동활동": {"행동", "활동", "움직임", "작업", "실행", "진행", "과정", "방법"},
		},
		Suffixes: []string{"다", "하다", "되다", "이다", "적", "의", "로", "을", "를"},
	}
}

// SeedWords returns the full seed pool in priority order: high-impact
// first, then effective, then general words.
func (l *Lexicon) SeedWords() []string {
	seeds := make([]string, 0, len(l.HighImpactWords)+len(l.EffectiveWords)+len(l.GeneralWords))
	seeds = append(seeds, l.HighImpactWords...)
	seeds = append(seeds, l.EffectiveWords...)
	seeds = append(seeds, l.GeneralWords...)
	return seeds
}
