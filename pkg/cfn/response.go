// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package cfn

import "fmt"

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Result is what a provisioner hands back for a single lifecycle request.
// PhysicalResourceID is carried on failure too, so CloudFormation can still issue
// a Delete against whatever was created.
type Result struct {
	PhysicalResourceID string
	Err                error
}

func Success(physicalResourceID string) *Result {
	return &Result{PhysicalResourceID: physicalResourceID}
}

func Failure(physicalResourceID string, err error) *Result {
	return &Result{PhysicalResourceID: physicalResourceID, Err: err}
}

func (r *Result) Failed() bool {
	return r.Err != nil
}

func (r *Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Response is the document PUT to the request's ResponseURL.
type Response struct {
	Status             Status         `json:"Status"`
	Reason             string         `json:"Reason,omitempty"`
	PhysicalResourceId string         `json:"PhysicalResourceId"`
	StackId            string         `json:"StackId"`
	RequestId          string         `json:"RequestId"`
	LogicalResourceId  string         `json:"LogicalResourceId"`
	Data               map[string]any `json:"Data"`
}

// NewResponse builds the envelope for result. logStream names the CloudWatch log
// stream quoted in the reason when a failure carries no message of its own.
func NewResponse(request *Request, result *Result, logStream string) *Response {
	response := &Response{
		Status:             StatusSuccess,
		PhysicalResourceId: result.PhysicalResourceID,
		StackId:            request.StackID,
		RequestId:          request.RequestID,
		LogicalResourceId:  request.LogicalResourceID,
		Data:               map[string]any{},
	}

	if result.Failed() {
		response.Status = StatusFailed
		response.Reason = result.ErrorMessage()
		if response.Reason == "" {
			response.Reason = fmt.Sprintf("See the details in CloudWatch Log Stream: %s", logStream)
		}
	}

	return response
}
