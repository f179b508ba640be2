package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/core"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (ep *Endpoint) ClockIn(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}

	now := time.Now().In(ep.cutoffs.Zone)
	status, err := ep.cutoffs.ResolveClockInStatus(now)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(
			fmt.Sprintf("Clock-in not allowed after %s", ep.cutoffs.HalfDay)))
		return
	}

	today := ep.cutoffs.DayStart(now)
	var day model.AttendanceDay

	err = ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		// A token can outlive its employee row; reject before opening
		// a ledger for an id that no longer exists.
		emp, err := core.FindEmployeeByID(db, employeeID)
		if err != nil {
			return err
		}
		if emp == nil {
			return errUnknownEmployee
		}

		return db.Transaction(func(tx *gorm.DB) error {
			// Lock the day row so two clock-ins cannot both pass the
			// open-session check.
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("employee_id = ? AND date = ?", employeeID, today).
				First(&day).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				day = model.AttendanceDay{
					EmployeeID: employeeID,
					Date:       today,
					IsWorking:  true,
					Status:     status,
				}
				day.SetSessions(attendance.Sessions{{ClockIn: now}})
				// The unique (employee_id, date) key closes the
				// create/create race.
				if err := tx.Omit(clause.Associations).Create(&day).Error; err != nil {
					if errors.Is(err, gorm.ErrDuplicatedKey) {
						return attendance.ErrAlreadyClockedIn
					}
					return err
				}
				return nil
			}
			if err != nil {
				return err
			}

			sessions := day.SessionList()
			if err := sessions.Append(now); err != nil {
				return err
			}
			day.SetSessions(sessions)
			day.IsWorking = true

			// Update status only if previously absent
			if day.Status == attendance.StatusAbsent {
				day.Status = status
			}

			return tx.Omit(clause.Associations).Save(&day).Error
		})
	})

	if errors.Is(err, errUnknownEmployee) {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("unknown employee identity"))
		return
	}
	if errors.Is(err, attendance.ErrAlreadyClockedIn) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Already clocked in, please clock out first"))
		return
	}
	if err != nil {
		common.Internal(c, "clock-in", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Clock-in successful",
		"attendance": day,
	})
}
