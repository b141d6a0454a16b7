package kernel

type AnalysisID string

func NewAnalysisID(id string) AnalysisID { return AnalysisID(id) }
func (a AnalysisID) String() string      { return string(a) }
func (a AnalysisID) IsEmpty() bool       { return string(a) == "" }
