package dto

type ExecuteCodeDTO struct {
	SourceCode     string `json:"source_code" binding:"required,max=65536"`
	Language       string `json:"language" binding:"required"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

type ExecutionResultDTO struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr,omitempty"`
	CompileOutput string `json:"compile_output,omitempty"`
	Message       string `json:"message,omitempty"`
	StatusID      int    `json:"status_id"`
	Status        string `json:"status"`
	Time          string `json:"time,omitempty"`
	Memory        int    `json:"memory,omitempty"`
	Passed        *bool  `json:"passed,omitempty"`
}
